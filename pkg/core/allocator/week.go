package allocator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

// DayAllocation maps hub names to the SSNs allocated there on one day
type DayAllocation map[string][]string

// WeekAllocate allocates every hub for each day of the week, Monday first
// and hubs in name order, all against the shared ledger.
//
// No one appears in two hub/day results within an epoch. After
// ClearAllocation, running WeekAllocate again over unchanged state
// reproduces the same ledger.
//
// The first capacity error aborts the week. People already allocated by
// earlier hubs or days stay in the ledger.
func (a *Allocator) WeekAllocate() ([]DayAllocation, error) {
	hubNames := a.hubs.Names()
	week := make([]DayAllocation, 0, DaysPerWeek)

	for day := range DaysPerWeek {
		dayAllocation := make(DayAllocation, len(hubNames))

		for _, hubName := range hubNames {
			allocated, err := a.Allocate(hubName, day)
			if err != nil {
				if errors.Is(err, model.ErrUnknownEntity) {
					a.logger.Warn("Skipping unknown hub or day",
						zap.String("hub", hubName),
						zap.Int("day", day),
						zap.Error(err))
					dayAllocation[hubName] = nil
					continue
				}
				return nil, fmt.Errorf("failed to allocate hub %q on day %d: %w", hubName, day, err)
			}
			dayAllocation[hubName] = allocated
		}

		week = append(week, dayAllocation)
	}

	a.logger.Info("Week allocated",
		zap.Int("hubs", len(hubNames)),
		zap.Int("allocated", a.ledger.Size()))

	return week, nil
}

// ClearAllocation empties the ledger and starts a new epoch.
// People, hubs and age intervals are untouched.
func (a *Allocator) ClearAllocation() {
	a.logger.Debug("Clearing allocation", zap.Int("allocated", a.ledger.Size()))
	a.ledger.Clear()
}
