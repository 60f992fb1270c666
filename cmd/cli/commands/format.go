package commands

import (
	"fmt"
	"strconv"
	"strings"
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// parseDay accepts a day index or a weekday name ("mon", "Tuesday", ...).
// Indices are passed through unchecked so the allocator decides what is out of range.
func parseDay(arg string) (int, error) {
	if day, err := strconv.Atoi(arg); err == nil {
		return day, nil
	}

	name := strings.ToLower(arg)
	if len(name) >= 3 {
		for i, dayName := range dayNames {
			if strings.HasPrefix(strings.ToLower(dayName), name) {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("day must be an index (0 = Monday) or a weekday name, got: %s", arg)
}

// dayName renders a day index for display
func dayName(day int) string {
	if day >= 0 && day < len(dayNames) {
		return dayNames[day]
	}
	return fmt.Sprintf("Day %d", day)
}

// formatIDs wraps ids into lines of at most perLine entries
func formatIDs(ids []string, perLine int) []string {
	if perLine < 1 {
		perLine = 1
	}

	var lines []string
	for start := 0; start < len(ids); start += perLine {
		end := min(start+perLine, len(ids))
		lines = append(lines, strings.Join(ids[start:end], ", "))
	}
	return lines
}

// dayTotals sums the allocation of every hub for one day
func dayTotals(day map[string][]string) int {
	total := 0
	for _, ids := range day {
		total += len(ids)
	}
	return total
}
