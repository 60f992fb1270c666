package allocator

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/pkg/core/ageband"
	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

const (
	// DaysPerWeek is the number of days covered by a weekly allocation
	DaysPerWeek = 7

	// ProportionalShare is the fraction of the remaining daily capacity
	// offered to each age interval during the proportional pass
	ProportionalShare = 0.4
)

// Population is the catalog of individuals being allocated
type Population interface {
	ageband.Population
	Count() int
}

// HubCatalog supplies hubs and their staffing-derived capacity
type HubCatalog interface {
	Lookup(name string) (model.Hub, bool)
	HourlyCapacity(name string) (int, error)
	Names() []string
}

// HoursProvider supplies the working hours of each day of the week
type HoursProvider interface {
	HoursFor(day int) int
}

// AllocationConfig contains the collaborators of an Allocator
type AllocationConfig struct {
	// Partition defines the age intervals and their priority
	Partition *ageband.Partition

	// People is the population being allocated
	People Population

	// Hubs supplies hourly capacity per hub
	Hubs HubCatalog

	// Hours supplies working hours per day
	Hours HoursProvider

	// Ledger records who has been allocated in the current epoch.
	// A fresh ledger is created when nil.
	Ledger *Ledger
}

// Allocator assigns people to hub/day vaccination slots, oldest interval first
type Allocator struct {
	partition *ageband.Partition
	people    Population
	hubs      HubCatalog
	hours     HoursProvider
	ledger    *Ledger
	logger    *zap.Logger
}

// New creates an Allocator from its collaborators
func New(config AllocationConfig, logger *zap.Logger) *Allocator {
	ledger := config.Ledger
	if ledger == nil {
		ledger = NewLedger()
	}

	return &Allocator{
		partition: config.Partition,
		people:    config.People,
		hubs:      config.Hubs,
		hours:     config.Hours,
		ledger:    ledger,
		logger:    logger,
	}
}

// Ledger returns the allocation ledger shared by every call
func (a *Allocator) Ledger() *Ledger {
	return a.ledger
}

// DailyAvailable returns the number of slots a hub offers on a day:
// hourly capacity multiplied by the working hours of that day.
//
// Day indexes run from 0 (Monday) to 6. The index one past the end is
// accepted and has no working hours.
func (a *Allocator) DailyAvailable(hubName string, day int) (int, error) {
	if _, ok := a.hubs.Lookup(hubName); !ok {
		return 0, fmt.Errorf("hub %q: %w", hubName, model.ErrUnknownEntity)
	}

	if day < 0 || day > DaysPerWeek {
		return 0, fmt.Errorf("day %d: %w", day, model.ErrUnknownEntity)
	}

	capacity, err := a.hubs.HourlyCapacity(hubName)
	if err != nil {
		return 0, err
	}

	return capacity * a.hours.HoursFor(day), nil
}

// Available returns, for every hub, the available slots of each day of the week
func (a *Allocator) Available() (map[string][]int, error) {
	available := make(map[string][]int)
	for _, hubName := range a.hubs.Names() {
		daily := make([]int, DaysPerWeek)
		for day := range DaysPerWeek {
			slots, err := a.DailyAvailable(hubName, day)
			if err != nil {
				return nil, err
			}
			daily[day] = slots
		}
		available[hubName] = daily
	}
	return available, nil
}

// Allocate fills the daily availability of a hub with people not yet in
// the ledger and returns their SSNs.
//
// The proportional pass visits intervals oldest first and offers each
// floor(40%) of the capacity still remaining at that point: an interval
// with fewer eligible people than its share gets all of them, otherwise it
// gets exactly its share. The leftover pass then visits the intervals in
// the same order and fills whatever capacity remains.
//
// Within an interval people are taken in ascending SSN order. Every
// returned SSN is added to the ledger.
func (a *Allocator) Allocate(hubName string, day int) ([]string, error) {
	n, err := a.DailyAvailable(hubName, day)
	if err != nil {
		return nil, err
	}

	intervals := a.partition.OldestFirst()

	// Interval membership cannot change during the call, only eligibility does
	members := make([][]string, len(intervals))
	for i, interval := range intervals {
		members[i] = ageband.Members(interval, a.people)
	}

	allocated := make([]string, 0, n)

	// Proportional pass
	for i, interval := range intervals {
		limit := int(math.Floor(float64(n) * ProportionalShare))
		eligible := a.eligible(members[i])

		taken := eligible
		if len(eligible) >= limit {
			taken = eligible[:limit]
		}

		a.ledger.AddAll(taken...)
		allocated = append(allocated, taken...)
		n -= len(taken)

		a.logger.Debug("Proportional allocation",
			zap.String("hub", hubName),
			zap.Int("day", day),
			zap.String("interval", interval.Label()),
			zap.Int("limit", limit),
			zap.Int("eligible", len(eligible)),
			zap.Int("allocated", len(taken)),
			zap.Int("remaining", n))
	}

	// Leftover pass
	if n != 0 {
		for i, interval := range intervals {
			if n <= 0 {
				break
			}

			eligible := a.eligible(members[i])
			taken := eligible[:min(n, len(eligible))]

			a.ledger.AddAll(taken...)
			allocated = append(allocated, taken...)
			n -= len(taken)

			a.logger.Debug("Leftover allocation",
				zap.String("hub", hubName),
				zap.Int("day", day),
				zap.String("interval", interval.Label()),
				zap.Int("eligible", len(eligible)),
				zap.Int("allocated", len(taken)),
				zap.Int("remaining", n))
		}
	}

	a.logger.Debug("Hub day allocated",
		zap.String("hub", hubName),
		zap.Int("day", day),
		zap.Int("allocated", len(allocated)),
		zap.Int("unused_capacity", n))

	return allocated, nil
}

// eligible filters out members already in the ledger
func (a *Allocator) eligible(members []string) []string {
	eligible := make([]string, 0, len(members))
	for _, id := range members {
		if !a.ledger.Contains(id) {
			eligible = append(eligible, id)
		}
	}
	return eligible
}
