package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/pkg/core/allocator"
	"github.com/jakechorley/vaccination-hubs/pkg/metrics"
)

// WeekPlan is the weekly allocation of one epoch
type WeekPlan struct {
	EpochID   string
	Days      []allocator.DayAllocation
	Allocated int
}

// AllocateDay allocates a single hub on a single day within the current epoch
func AllocateDay(c *Campaign, logger *zap.Logger, hubName string, day int) ([]string, error) {
	allocated, err := c.Allocator.Allocate(hubName, day)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate hub %q on day %d: %w", hubName, day, err)
	}

	metrics.DailyAllocated.WithLabelValues(hubName, metrics.DayLabel(day)).Add(float64(len(allocated)))
	recordLedger(c)

	logger.Info("Day allocated",
		zap.String("epoch_id", c.EpochID),
		zap.String("hub", hubName),
		zap.Int("day", day),
		zap.Int("allocated", len(allocated)))

	return allocated, nil
}

// AllocateWeek allocates every hub for every day of the week within the current epoch
func AllocateWeek(c *Campaign, logger *zap.Logger) (*WeekPlan, error) {
	logger.Debug("Allocating week",
		zap.String("epoch_id", c.EpochID),
		zap.Int("people", c.People.Count()),
		zap.Int("already_allocated", c.Allocator.Ledger().Size()))

	days, err := c.Allocator.WeekAllocate()
	// Entries committed before a failure stay in the ledger
	recordLedger(c)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate week: %w", err)
	}

	allocated := 0
	for day, dayAllocation := range days {
		for hub, ids := range dayAllocation {
			metrics.DailyAllocated.WithLabelValues(hub, metrics.DayLabel(day)).Add(float64(len(ids)))
			allocated += len(ids)
		}
	}

	logger.Info("Week allocated",
		zap.String("epoch_id", c.EpochID),
		zap.Int("allocated", allocated),
		zap.Int("ledger_size", c.Allocator.Ledger().Size()))

	return &WeekPlan{
		EpochID:   c.EpochID,
		Days:      days,
		Allocated: allocated,
	}, nil
}

// ClearAllocation empties the ledger and starts a new epoch
func ClearAllocation(c *Campaign, logger *zap.Logger) {
	previous := c.EpochID
	c.Allocator.ClearAllocation()
	c.startEpoch()

	logger.Info("Allocation cleared",
		zap.String("previous_epoch_id", previous),
		zap.String("epoch_id", c.EpochID))
}

// recordLedger publishes the ledger size and per-interval counts
func recordLedger(c *Campaign) {
	metrics.PeopleAllocated.Set(float64(c.Allocator.Ledger().Size()))
	for label, count := range c.Allocator.AllocatedByInterval() {
		metrics.AllocatedByInterval.WithLabelValues(label).Set(float64(count))
	}
}
