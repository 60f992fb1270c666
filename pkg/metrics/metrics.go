// Package metrics exposes Prometheus metrics describing allocation epochs.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the campaign
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// PeopleRegistered tracks the size of the registered population
var PeopleRegistered = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "vaccination",
	Name:      "people_registered",
	Help:      "Number of people registered in the campaign",
})

// PeopleRejectedTotal counts people file lines skipped during bulk load
var PeopleRejectedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "vaccination",
	Name:      "people_rejected_total",
	Help:      "Number of people file lines rejected during bulk load",
})

// PeopleAllocated tracks the size of the allocation ledger
var PeopleAllocated = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "vaccination",
	Name:      "people_allocated",
	Help:      "Number of people allocated in the current epoch",
})

// AllocatedByInterval tracks allocated people per age interval
var AllocatedByInterval = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "vaccination",
	Name:      "allocated_by_interval",
	Help:      "Number of people allocated in the current epoch per age interval",
}, []string{"interval"})

// DailyCapacity tracks the slots offered by each hub per day
var DailyCapacity = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "vaccination",
	Name:      "daily_capacity",
	Help:      "Vaccination slots available per hub and day",
}, []string{"hub", "day"})

// DailyAllocated tracks the slots filled by each hub per day
var DailyAllocated = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "vaccination",
	Name:      "daily_allocated",
	Help:      "Vaccination slots filled per hub and day in the current epoch",
}, []string{"hub", "day"})

// EpochsTotal counts allocation epochs started
var EpochsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "vaccination",
	Name:      "epochs_total",
	Help:      "Number of allocation epochs started",
})

// ResetAllocation clears the per-epoch allocation metrics
func ResetAllocation() {
	PeopleAllocated.Set(0)
	AllocatedByInterval.Reset()
	DailyAllocated.Reset()
}

// DayLabel renders a day index as a metric label
func DayLabel(day int) string {
	return strconv.Itoa(day)
}
