package registry

import (
	"fmt"
	"slices"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

// Hubs is the catalog of vaccination hubs, keyed by name
type Hubs struct {
	hubs map[string]*model.Hub
}

// NewHubs creates an empty hub catalog
func NewHubs() *Hubs {
	return &Hubs{
		hubs: make(map[string]*model.Hub),
	}
}

// Define registers a new hub without staff
func (r *Hubs) Define(name string) error {
	if _, exists := r.hubs[name]; exists {
		return fmt.Errorf("hub %q: %w", name, model.ErrDuplicateEntity)
	}

	r.hubs[name] = &model.Hub{Name: name}
	return nil
}

// SetStaff sets the staffing of a hub. All counts must be positive.
func (r *Hubs) SetStaff(name string, doctors, nurses, other int) error {
	hub, ok := r.hubs[name]
	if !ok {
		return fmt.Errorf("hub %q: %w", name, model.ErrUnknownEntity)
	}

	if doctors <= 0 || nurses <= 0 || other <= 0 {
		return fmt.Errorf("hub %q: staff counts must be positive (doctors=%d, nurses=%d, other=%d): %w",
			name, doctors, nurses, other, model.ErrInvalidConfiguration)
	}

	hub.Doctors = doctors
	hub.Nurses = nurses
	hub.Other = other
	return nil
}

// Lookup returns a copy of the hub with the given name
func (r *Hubs) Lookup(name string) (model.Hub, bool) {
	hub, ok := r.hubs[name]
	if !ok {
		return model.Hub{}, false
	}
	return *hub, true
}

// HourlyCapacity derives the hourly capacity of a hub from its current staffing
func (r *Hubs) HourlyCapacity(name string) (int, error) {
	hub, ok := r.hubs[name]
	if !ok {
		return 0, fmt.Errorf("hub %q: %w", name, model.ErrUnknownEntity)
	}
	return hub.HourlyCapacity()
}

// Names returns the hub names in ascending order
func (r *Hubs) Names() []string {
	names := make([]string, 0, len(r.hubs))
	for name := range r.hubs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
