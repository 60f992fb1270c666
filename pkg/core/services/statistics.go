package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// IntervalStatistics describes the allocation of one age interval
type IntervalStatistics struct {
	Label string

	// Allocated is the number of allocated members of the interval
	Allocated int

	// RatioOfPopulation is Allocated over the whole registered population
	RatioOfPopulation float64

	// ShareOfAllocated is Allocated over everyone allocated in the epoch
	ShareOfAllocated float64
}

// StatisticsReport describes the allocation state of the current epoch
type StatisticsReport struct {
	EpochID      string
	Registered   int
	Allocated    int
	OverallRatio float64
	Intervals    []IntervalStatistics
}

// Statistics reports the allocation ratios of the current epoch.
// Intervals are listed youngest first.
func Statistics(c *Campaign) *StatisticsReport {
	counts := c.Allocator.AllocatedByInterval()
	byInterval := c.Allocator.RatioByInterval()
	distribution := c.Allocator.Distribution()

	report := &StatisticsReport{
		EpochID:      c.EpochID,
		Registered:   c.People.Count(),
		Allocated:    c.Allocator.Ledger().Size(),
		OverallRatio: c.Allocator.OverallRatio(),
	}

	for _, label := range c.Partition.Labels() {
		report.Intervals = append(report.Intervals, IntervalStatistics{
			Label:             label,
			Allocated:         counts[label],
			RatioOfPopulation: byInterval[label],
			ShareOfAllocated:  distribution[label],
		})
	}

	return report
}

// FormatPercent renders a ratio as a percentage with two decimals, e.g. "12.34%".
// Undefined ratios (no population or nobody allocated) render as "n/a".
func FormatPercent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(ratio).Shift(2).StringFixed(2) + "%"
}
