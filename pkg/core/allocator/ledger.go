package allocator

import "slices"

// Ledger is the set of SSNs already allocated in the current epoch.
//
// It is shared by every allocation across all hubs and days. Once an SSN is
// in the ledger it is never eligible again until Clear starts a new epoch.
// The ledger is not safe for concurrent use; callers must serialise access
// for the whole epoch.
type Ledger struct {
	ids map[string]struct{}
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		ids: make(map[string]struct{}),
	}
}

// Contains reports whether id has been allocated in this epoch
func (l *Ledger) Contains(id string) bool {
	_, ok := l.ids[id]
	return ok
}

// AddAll marks every id as allocated
func (l *Ledger) AddAll(ids ...string) {
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
}

// Clear empties the ledger, starting a new epoch
func (l *Ledger) Clear() {
	clear(l.ids)
}

// Size returns the number of allocated ids
func (l *Ledger) Size() int {
	return len(l.ids)
}

// IDs returns a sorted snapshot of the allocated ids
func (l *Ledger) IDs() []string {
	ids := make([]string, 0, len(l.ids))
	for id := range l.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
