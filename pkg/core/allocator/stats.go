package allocator

// AllocatedByInterval counts the allocated people in each age interval
func (a *Allocator) AllocatedByInterval() map[string]int {
	counts := make(map[string]int)
	year := a.people.CurrentYear()
	all := a.people.All()

	for _, interval := range a.partition.Intervals() {
		count := 0
		for _, person := range all {
			if interval.Between(person.Age(year)) && a.ledger.Contains(person.SSN) {
				count++
			}
		}
		counts[interval.Label()] = count
	}
	return counts
}

// OverallRatio returns allocated people over registered people.
// The population must not be empty.
func (a *Allocator) OverallRatio() float64 {
	return float64(a.ledger.Size()) / float64(a.people.Count())
}

// RatioByInterval returns, per interval, the allocated members of that
// interval over the whole registered population
func (a *Allocator) RatioByInterval() map[string]float64 {
	total := float64(a.people.Count())

	ratios := make(map[string]float64)
	for label, count := range a.AllocatedByInterval() {
		ratios[label] = float64(count) / total
	}
	return ratios
}

// Distribution returns, per interval, the allocated members of that
// interval over all allocated people. The values sum to 1.
func (a *Allocator) Distribution() map[string]float64 {
	total := float64(a.ledger.Size())

	distribution := make(map[string]float64)
	for label, count := range a.AllocatedByInterval() {
		distribution[label] = float64(count) / total
	}
	return distribution
}
