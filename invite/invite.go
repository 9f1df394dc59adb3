package invite

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/guestlist/candidate"
	"github.com/katalvlaran/guestlist/guest"
)

// Iterator is a level-synchronized breadth-first walk over a guest graph that
// yields accepted people on demand.
type Iterator struct {
	ix   *candidate.Index
	opts Options

	level  int // level being scanned, starts at 1
	cursor int // next index position to scan in this level

	// live counts unused candidates that are ready or available and pass the
	// filter; active counts the same regardless of the filter.
	live   int
	active int

	exhausted bool
	peek      *guest.Person // next accepted person, nil when none
	err       error
}

// New builds an Iterator over people. filter must be non-nil, including typed
// nils such as a nil FilterFunc or a nil pointer filter.
// Returns ErrInvalidArgument for a nil filter or nil people, and wraps
// candidate.ErrNilFilter, candidate.ErrNilPerson or candidate.ErrDuplicateName.
func New(people []*guest.Person, filter guest.Filter, opts ...Option) (*Iterator, error) {
	if filter == nil {
		return nil, fmt.Errorf("%w: filter is nil", ErrInvalidArgument)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ix, err := candidate.Build(people, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	it := &Iterator{ix: ix, opts: o, level: 1}
	for i := 0; i < ix.Len(); i++ {
		c := ix.At(i)
		if c.Active() {
			it.active++
			if c.PassesFilter {
				it.live++
			}
		}
	}
	if o.Limited && o.MaxLevel < 1 {
		it.exhausted = true
	}
	it.fill()

	return it, nil
}

// Next returns the next invitee. ok is false once the list is complete.
// After an error the Iterator must not be reused; it keeps returning that error.
func (it *Iterator) Next() (p *guest.Person, ok bool, err error) {
	if it.err != nil {
		return nil, false, it.err
	}
	if it.peek == nil {
		return nil, false, nil
	}
	p = it.peek
	it.peek = nil
	it.fill()

	return p, true, nil
}

// Done reports whether the next call to Next will report exhaustion.
// It does not change the Iterator.
func (it *Iterator) Done() bool {
	return it.err == nil && it.peek == nil
}

// Pending returns how many reached, not yet returned people pass the filter.
// It is a lower bound on the remaining output: people not reached yet are not
// counted, and people beyond the level bound are.
func (it *Iterator) Pending() int {
	if it.peek != nil {
		return it.live + 1
	}
	return it.live
}

// All returns the remaining invitees as a range-over-func sequence.
// Iteration stops after the first error, which is yielded with a nil person.
func (it *Iterator) All() iter.Seq2[*guest.Person, error] {
	return func(yield func(*guest.Person, error) bool) {
		for {
			p, ok, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok || !yield(p, nil) {
				return
			}
		}
	}
}

// Collect pulls at most limit invitees from it (limit <= 0 means all).
// On error it returns the people collected so far together with the error.
func Collect(it *Iterator, limit int) ([]*guest.Person, error) {
	var out []*guest.Person
	for limit <= 0 || len(out) < limit {
		p, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out, nil
}

// fill advances the walk until the next accepted person is buffered in peek,
// the walk is exhausted, or an error occurs.
func (it *Iterator) fill() {
	for !it.exhausted {
		if it.active == 0 {
			it.exhausted = true
			return
		}
		for it.cursor < it.ix.Len() {
			c := it.ix.At(it.cursor)
			it.cursor++
			if !c.Ready {
				continue
			}
			if p, done := it.visit(c); done {
				it.peek = p
				return
			}
			if it.err != nil {
				return
			}
		}
		it.levelUp()
	}
}

// visit expands c's friends, marks c used and reports whether c is accepted.
func (it *Iterator) visit(c *candidate.Candidate) (*guest.Person, bool) {
	if err := it.activateFriends(c); err != nil {
		it.err = err
		it.exhausted = true
		return nil, false
	}
	c.MarkUsed()
	it.active--
	if c.PassesFilter {
		it.live--
	}
	it.opts.OnVisit(c.Person, it.level, c.PassesFilter)
	if !c.PassesFilter {
		return nil, false
	}

	return c.Person, true
}

// activateFriends makes every dormant friend of c available for the next level.
func (it *Iterator) activateFriends(c *candidate.Candidate) error {
	for _, name := range c.Person.Friends {
		pos, ok := it.ix.Position(name)
		if !ok {
			return fmt.Errorf("%w: %q lists unknown friend %q", ErrGraphIntegrity, c.Person.Name, name)
		}
		f := it.ix.At(pos)
		if !f.Dormant() {
			continue
		}
		f.Available = true
		it.active++
		if f.PassesFilter {
			it.live++
		}
	}

	return nil
}

// levelUp promotes every available, unused candidate to ready and rewinds the
// scan. The walk is exhausted when the bound is hit or nobody was promoted.
func (it *Iterator) levelUp() {
	if it.opts.Limited && it.level+1 > it.opts.MaxLevel {
		it.exhausted = true
		return
	}
	promoted := 0
	for i := 0; i < it.ix.Len(); i++ {
		c := it.ix.At(i)
		if c.Available && !c.Used && !c.Ready {
			c.Ready = true
			promoted++
		}
	}
	if promoted == 0 {
		it.exhausted = true
		return
	}
	it.level++
	it.cursor = 0
	it.opts.OnLevelUp(it.level, promoted)
}
