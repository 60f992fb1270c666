package registry

import (
	"slices"
	"strings"

	"github.com/jakechorley/vaccination-hubs/pkg/core/model"
)

// People is the catalog of registered individuals, keyed by SSN
type People struct {
	people      map[string]model.Person
	currentYear int
}

// NewPeople creates an empty catalog that computes ages against currentYear
func NewPeople(currentYear int) *People {
	return &People{
		people:      make(map[string]model.Person),
		currentYear: currentYear,
	}
}

// Add registers a new person. Returns false if the SSN is already registered.
func (r *People) Add(firstName, lastName, ssn string, birthYear int) bool {
	if _, exists := r.people[ssn]; exists {
		return false
	}

	r.people[ssn] = model.Person{
		SSN:       ssn,
		FirstName: firstName,
		LastName:  lastName,
		BirthYear: birthYear,
	}
	return true
}

// Lookup returns the person with the given SSN
func (r *People) Lookup(ssn string) (model.Person, bool) {
	p, ok := r.people[ssn]
	return p, ok
}

// Info returns the person formatted as "SSN,LAST,FIRST", or "" if unknown
func (r *People) Info(ssn string) string {
	p, ok := r.people[ssn]
	if !ok {
		return ""
	}
	return p.String()
}

// Age returns the age of the person with the given SSN
func (r *People) Age(ssn string) (int, bool) {
	p, ok := r.people[ssn]
	if !ok {
		return 0, false
	}
	return p.Age(r.currentYear), true
}

// All returns every registered person ordered by SSN.
// The ordering makes allocation reproducible at the individual level.
func (r *People) All() []model.Person {
	all := make([]model.Person, 0, len(r.people))
	for _, p := range r.people {
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b model.Person) int {
		return strings.Compare(a.SSN, b.SSN)
	})
	return all
}

// Count returns the number of registered people
func (r *People) Count() int {
	return len(r.people)
}

// CurrentYear returns the reference year used for age computation
func (r *People) CurrentYear() int {
	return r.currentYear
}
