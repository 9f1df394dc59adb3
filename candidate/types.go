package candidate

import (
	"errors"

	"github.com/katalvlaran/guestlist/guest"
)

// Sentinel errors for index construction.
var (
	// ErrNilPerson indicates a nil entry in the people slice.
	ErrNilPerson = errors.New("candidate: nil person")

	// ErrNilFilter indicates Build was called without a filter.
	ErrNilFilter = errors.New("candidate: filter is nil")

	// ErrDuplicateName indicates two people with the same name.
	ErrDuplicateName = errors.New("candidate: duplicate name")
)

// Candidate is the traversal record of one Person.
//
// A record moves strictly forward: unavailable, Available, Ready, Used.
// Once Used is set, Ready and Available stay false.
type Candidate struct {
	// Person is the shared, read-only source record.
	Person *guest.Person

	// PassesFilter caches filter.Test(Person), computed once at Build.
	PassesFilter bool

	// Available marks a candidate that becomes Ready at the next level-up.
	Available bool

	// Ready marks a candidate to be visited during the current level.
	Ready bool

	// Used marks a visited candidate; terminal.
	Used bool
}

// Active reports whether the candidate is still scheduled for a visit.
func (c *Candidate) Active() bool {
	return !c.Used && (c.Ready || c.Available)
}

// Dormant reports whether the candidate has not been reached at all yet.
func (c *Candidate) Dormant() bool {
	return !c.Ready && !c.Available && !c.Used
}

// MarkUsed moves the candidate to its terminal state.
func (c *Candidate) MarkUsed() {
	c.Used = true
	c.Ready = false
	c.Available = false
}

// Index is the arena of Candidates, sorted by name, with a name → position map.
// The layout is fixed after Build; only the Candidate flags change.
type Index struct {
	items []Candidate
	pos   map[string]int
}
