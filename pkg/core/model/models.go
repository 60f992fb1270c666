package model

import (
	"fmt"
)

// Staffing multipliers used to derive hourly capacity
const (
	VaccinationsPerDoctor = 10
	VaccinationsPerNurse  = 12
	VaccinationsPerOther  = 20
)

// Person represents a registered individual
// Age is never stored; use Age with the campaign's current year
type Person struct {
	SSN       string
	FirstName string
	LastName  string
	BirthYear int
}

// Age returns the age of the person relative to currentYear
func (p Person) Age(currentYear int) int {
	return currentYear - p.BirthYear
}

// String renders the person as "SSN,LAST,FIRST"
func (p Person) String() string {
	return fmt.Sprintf("%s,%s,%s", p.SSN, p.LastName, p.FirstName)
}

// Hub represents a vaccination hub and its staffing
type Hub struct {
	Name    string
	Doctors int
	Nurses  int
	Other   int
}

// HourlyCapacity returns min(10*doctors, 12*nurses, 20*other)
// Returns ErrCapacityUndefined while the hub has no staff
func (h Hub) HourlyCapacity() (int, error) {
	if h.Doctors == 0 && h.Nurses == 0 && h.Other == 0 {
		return 0, fmt.Errorf("hub %q: team not defined: %w", h.Name, ErrCapacityUndefined)
	}

	return min(
		h.Doctors*VaccinationsPerDoctor,
		h.Nurses*VaccinationsPerNurse,
		h.Other*VaccinationsPerOther,
	), nil
}

// String returns the hub name
func (h Hub) String() string {
	return h.Name
}
