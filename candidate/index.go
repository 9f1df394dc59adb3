package candidate

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/katalvlaran/guestlist/guest"
)

// Build creates one Candidate per person, sorted ascending by name.
// Best friends start Available and Ready; everyone else starts dormant.
// The filter is evaluated exactly once per person.
//
// Complexity: O(n log n) time, O(n) space.
func Build(people []*guest.Person, filter guest.Filter) (*Index, error) {
	if isNilFilter(filter) {
		return nil, ErrNilFilter
	}
	items := make([]Candidate, len(people))
	for i, p := range people {
		if p == nil {
			return nil, fmt.Errorf("%w at input position %d", ErrNilPerson, i)
		}
		items[i] = Candidate{
			Person:       p,
			PassesFilter: filter.Test(p),
			Available:    p.Best,
			Ready:        p.Best,
		}
	}

	slices.SortFunc(items, func(a, b Candidate) int {
		return strings.Compare(a.Person.Name, b.Person.Name)
	})

	pos := make(map[string]int, len(items))
	for i := range items {
		name := items[i].Person.Name
		// equal names end up adjacent after sorting
		if i > 0 && items[i-1].Person.Name == name {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		pos[name] = i
	}

	return &Index{items: items, pos: pos}, nil
}

// Len returns the number of candidates.
func (ix *Index) Len() int { return len(ix.items) }

// At returns the candidate at position i for in-place updates.
// It panics if i is out of range, like a slice index.
func (ix *Index) At(i int) *Candidate { return &ix.items[i] }

// Position resolves a name to its position in sorted order.
func (ix *Index) Position(name string) (int, bool) {
	i, ok := ix.pos[name]
	return i, ok
}

// Names returns every name in index order.
func (ix *Index) Names() []string {
	out := make([]string, len(ix.items))
	for i := range ix.items {
		out[i] = ix.items[i].Person.Name
	}
	return out
}

// isNilFilter catches both a nil interface and a typed nil, such as a nil
// FilterFunc or a nil pointer whose Test method would dereference it.
func isNilFilter(filter guest.Filter) bool {
	if filter == nil {
		return true
	}
	v := reflect.ValueOf(filter)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}

	return false
}
