package guest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for guest records and filters.
var (
	// ErrUnknownFilter is returned by ParseFilter for an unrecognized name.
	ErrUnknownFilter = errors.New("guest: unknown filter")

	// ErrInvalidPerson is returned by Validate when a record fails validation.
	ErrInvalidPerson = errors.New("guest: invalid person")
)

// Gender of a Person. The zero value means "unspecified".
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Person is one node of the guest graph.
//
// Friends lists the names of acquaintances in the order they were supplied;
// a name may refer to any Person of the same graph.
type Person struct {
	Name    string   `json:"name" yaml:"name" validate:"required"`
	Gender  Gender   `json:"gender,omitempty" yaml:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Best    bool     `json:"best" yaml:"best"`
	Friends []string `json:"friends,omitempty" yaml:"friends,omitempty" validate:"dive,required"`
}

// String returns the person's name.
func (p *Person) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}

// Filter decides whether a visited Person is accepted into the output.
// Filters never influence which people are traversed, only which are emitted.
type Filter interface {
	Test(p *Person) bool
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(p *Person) bool

// Test calls f(p).
func (f FilterFunc) Test(p *Person) bool { return f(p) }

// Ready-made filters.
var (
	// AcceptAll accepts every person.
	AcceptAll Filter = FilterFunc(func(*Person) bool { return true })

	// MaleOnly accepts people whose Gender is Male.
	MaleOnly Filter = FilterFunc(func(p *Person) bool { return p.Gender == Male })

	// FemaleOnly accepts people whose Gender is Female.
	FemaleOnly Filter = FilterFunc(func(p *Person) bool { return p.Gender == Female })
)

// Filter names understood by ParseFilter.
const (
	FilterAll    = "all"
	FilterMale   = "male"
	FilterFemale = "female"
)

// FilterNames lists the names accepted by ParseFilter in a stable order.
func FilterNames() []string {
	return []string{FilterAll, FilterMale, FilterFemale}
}

// ParseFilter maps a filter name (case-insensitive) to a ready-made Filter.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FilterAll, "":
		return AcceptAll, nil
	case FilterMale:
		return MaleOnly, nil
	case FilterFemale:
		return FemaleOnly, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFilter, name, strings.Join(FilterNames(), ", "))
	}
}
