// Package ageband partitions ages into contiguous half-open bands.
//
// Bands are built from a list of breaks: the first band always starts at 0
// and the last one is unbounded above. Bands are identified by their
// canonical label, e.g. "[40,50)" or "[60,+)".
package ageband

import (
	"fmt"
	"slices"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

// Interval is an age band [Lower, Upper), or [Lower, +inf) when Unbounded
type Interval struct {
	Lower     int
	Upper     int
	Unbounded bool
}

// Between reports whether age falls inside the interval
func (i Interval) Between(age int) bool {
	if i.Unbounded {
		return age >= i.Lower
	}
	return age >= i.Lower && age < i.Upper
}

// Label returns the canonical label of the interval
func (i Interval) Label() string {
	if i.Unbounded {
		return fmt.Sprintf("[%d,+)", i.Lower)
	}
	return fmt.Sprintf("[%d,%d)", i.Lower, i.Upper)
}

// String implements fmt.Stringer
func (i Interval) String() string {
	return i.Label()
}

// Population supplies the individuals whose ages are partitioned
type Population interface {
	All() []model.Person
	CurrentYear() int
}

// Partition holds the ordered set of age intervals
type Partition struct {
	intervals []Interval
}

// NewPartition creates an empty partition
func NewPartition() *Partition {
	return &Partition{}
}

// DefineBreaks replaces the partition with [0,b0), [b0,b1), ..., [bN,+).
// Breaks are expected to be strictly increasing and are not re-validated.
func (p *Partition) DefineBreaks(breaks ...int) error {
	if len(breaks) == 0 {
		return fmt.Errorf("at least one age break is required: %w", model.ErrInvalidConfiguration)
	}

	intervals := make([]Interval, 0, len(breaks)+1)
	lower := 0
	for _, b := range breaks {
		intervals = append(intervals, Interval{Lower: lower, Upper: b})
		lower = b
	}
	intervals = append(intervals, Interval{Lower: lower, Unbounded: true})

	p.intervals = intervals
	return nil
}

// Intervals returns the intervals sorted by ascending lower bound
func (p *Partition) Intervals() []Interval {
	sorted := slices.Clone(p.intervals)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return a.Lower - b.Lower
	})
	return sorted
}

// OldestFirst returns the intervals sorted by descending lower bound.
// This is the allocation priority order.
func (p *Partition) OldestFirst() []Interval {
	sorted := p.Intervals()
	slices.Reverse(sorted)
	return sorted
}

// Labels returns the interval labels sorted by ascending lower bound
func (p *Partition) Labels() []string {
	intervals := p.Intervals()
	labels := make([]string, len(intervals))
	for i, interval := range intervals {
		labels[i] = interval.Label()
	}
	return labels
}

// Resolve finds the interval with the given canonical label
func (p *Partition) Resolve(label string) (Interval, bool) {
	for _, interval := range p.intervals {
		if interval.Label() == label {
			return interval, true
		}
	}
	return Interval{}, false
}

// MembersOf returns the SSNs of every individual whose age falls in the
// interval identified by label, in the order supplied by the population
func (p *Partition) MembersOf(label string, population Population) ([]string, error) {
	interval, ok := p.Resolve(label)
	if !ok {
		return nil, fmt.Errorf("age interval %q: %w", label, model.ErrUnknownEntity)
	}
	return Members(interval, population), nil
}

// Members returns the SSNs of every individual whose age falls in interval
func Members(interval Interval, population Population) []string {
	year := population.CurrentYear()

	members := make([]string, 0)
	for _, person := range population.All() {
		if interval.Between(person.Age(year)) {
			members = append(members, person.SSN)
		}
	}
	return members
}
