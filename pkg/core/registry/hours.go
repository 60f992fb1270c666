package registry

import (
	"fmt"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

const (
	// DaysPerWeek is the length of the weekly hours vector (index 0 = Monday)
	DaysPerWeek = 7

	// MaxDailyHours is the upper bound on working hours for a single day
	MaxDailyHours = 12

	slotsPerHour  = 4
	slotMinutes   = 15
	firstSlotHour = 9
)

// WeeklyHours holds the working hours for each day of the week
type WeeklyHours struct {
	hours [DaysPerWeek]int
}

// NewWeeklyHours creates a week with zero working hours on every day
func NewWeeklyHours() *WeeklyHours {
	return &WeeklyHours{}
}

// SetHours replaces the weekly hours. Exactly 7 values in [0,12] are required.
func (w *WeeklyHours) SetHours(hs ...int) error {
	if len(hs) != DaysPerWeek {
		return fmt.Errorf("expected %d daily hours, got %d: %w", DaysPerWeek, len(hs), model.ErrInvalidConfiguration)
	}

	for day, h := range hs {
		if h < 0 || h > MaxDailyHours {
			return fmt.Errorf("hours for day %d must be between 0 and %d, got %d: %w",
				day, MaxDailyHours, h, model.ErrInvalidConfiguration)
		}
	}

	copy(w.hours[:], hs)
	return nil
}

// HoursFor returns the working hours of the given day.
// Days outside the week have no working hours.
func (w *WeeklyHours) HoursFor(day int) int {
	if day < 0 || day >= DaysPerWeek {
		return 0
	}
	return w.hours[day]
}

// Hours returns a copy of the weekly hours vector
func (w *WeeklyHours) Hours() []int {
	return append([]int(nil), w.hours[:]...)
}

// TimeSlots returns, for each day, the 15-minute slot labels ("09:00",
// "09:15", ...) covering that day's working hours starting at 09:00
func (w *WeeklyHours) TimeSlots() [][]string {
	slots := make([][]string, DaysPerWeek)
	for day, h := range w.hours {
		daySlots := make([]string, 0, h*slotsPerHour)
		for hour := 0; hour < h; hour++ {
			for quarter := 0; quarter < slotsPerHour; quarter++ {
				daySlots = append(daySlots, fmt.Sprintf("%02d:%02d", firstSlotHour+hour, quarter*slotMinutes))
			}
		}
		slots[day] = daySlots
	}
	return slots
}
