package candidate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/guestlist/candidate"
	"github.com/katalvlaran/guestlist/guest"
)

type prefixFilter struct{ prefix string }

func (f *prefixFilter) Test(p *guest.Person) bool { return strings.HasPrefix(p.Name, f.prefix) }

// TestBuild_Errors verifies that nil filters, nil people and duplicates are rejected.
func TestBuild_Errors(t *testing.T) {
	people := []*guest.Person{{Name: "A"}}
	if _, err := candidate.Build(people, nil); !errors.Is(err, candidate.ErrNilFilter) {
		t.Errorf("nil filter: want ErrNilFilter, got %v", err)
	}
	var fn guest.FilterFunc
	if _, err := candidate.Build(people, fn); !errors.Is(err, candidate.ErrNilFilter) {
		t.Errorf("nil FilterFunc: want ErrNilFilter, got %v", err)
	}
	var pf *prefixFilter
	if _, err := candidate.Build(people, pf); !errors.Is(err, candidate.ErrNilFilter) {
		t.Errorf("nil pointer filter: want ErrNilFilter, got %v", err)
	}
	if _, err := candidate.Build([]*guest.Person{{Name: "A"}, nil}, guest.AcceptAll); !errors.Is(err, candidate.ErrNilPerson) {
		t.Errorf("nil person: want ErrNilPerson, got %v", err)
	}
	dup := []*guest.Person{{Name: "B"}, {Name: "A"}, {Name: "B"}}
	if _, err := candidate.Build(dup, guest.AcceptAll); !errors.Is(err, candidate.ErrDuplicateName) {
		t.Errorf("duplicate: want ErrDuplicateName, got %v", err)
	}
}

// TestBuild_SortedPositions checks byte-wise name order and position lookup.
func TestBuild_SortedPositions(t *testing.T) {
	people := []*guest.Person{{Name: "bob"}, {Name: "Zed"}, {Name: "alice"}, {Name: "Ann"}}
	ix, err := candidate.Build(people, guest.AcceptAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// upper case sorts before lower case in byte order
	want := []string{"Ann", "Zed", "alice", "bob"}
	if diff := cmp.Diff(want, ix.Names()); diff != "" {
		t.Errorf("unexpected order -want/+got:\n\t%s", diff)
	}
	for i, name := range want {
		got, ok := ix.Position(name)
		if !ok || got != i {
			t.Errorf("Position(%q) = %d,%v; want %d,true", name, got, ok, i)
		}
		if ix.At(i).Person.Name != name {
			t.Errorf("At(%d) = %q; want %q", i, ix.At(i).Person.Name, name)
		}
	}
	if _, ok := ix.Position("nobody"); ok {
		t.Error("Position(nobody) reported a hit")
	}
	if ix.Len() != len(people) {
		t.Errorf("Len = %d; want %d", ix.Len(), len(people))
	}
}

// TestBuild_InitialState checks best-friend seeding and the cached filter result.
func TestBuild_InitialState(t *testing.T) {
	a := &guest.Person{Name: "A", Gender: guest.Male, Best: true}
	b := &guest.Person{Name: "B", Gender: guest.Female}
	ix, err := candidate.Build([]*guest.Person{b, a}, guest.MaleOnly)
	if err != nil {
		t.Fatal(err)
	}

	ca, cb := ix.At(0), ix.At(1)
	if ca.Person != a || cb.Person != b {
		t.Fatalf("records must point at the input persons")
	}
	if !ca.Ready || !ca.Available || ca.Used || !ca.PassesFilter {
		t.Errorf("A state = %+v; want ready, available, passing", *ca)
	}
	if cb.Ready || cb.Available || cb.Used || cb.PassesFilter {
		t.Errorf("B state = %+v; want dormant, filtered out", *cb)
	}
	if !cb.Dormant() || ca.Dormant() {
		t.Error("Dormant mismatch")
	}
	if !ca.Active() || cb.Active() {
		t.Error("Active mismatch")
	}

	ca.MarkUsed()
	if ca.Ready || ca.Available || !ca.Used || ca.Active() || ca.Dormant() {
		t.Errorf("after MarkUsed: %+v", *ca)
	}
}

// TestBuild_FilterCalledOnce counts filter invocations.
func TestBuild_FilterCalledOnce(t *testing.T) {
	calls := map[string]int{}
	f := guest.FilterFunc(func(p *guest.Person) bool { calls[p.Name]++; return true })
	people := []*guest.Person{{Name: "x"}, {Name: "y"}, {Name: "z"}}
	if _, err := candidate.Build(people, f); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"x": 1, "y": 1, "z": 1}, calls); diff != "" {
		t.Errorf("filter calls -want/+got:\n\t%s", diff)
	}
}

// TestBuild_Empty accepts an empty graph.
func TestBuild_Empty(t *testing.T) {
	ix, err := candidate.Build(nil, guest.AcceptAll)
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 0 {
		t.Errorf("Len = %d; want 0", ix.Len())
	}
}
