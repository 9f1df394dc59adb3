// Package invite produces a wedding invitation list from a guest graph as a
// lazily pulled sequence.
//
// What
//
//   - Starts from every Person marked Best (always eligible, level 1).
//   - Expands outward through friend links one degree of separation at a time.
//     Everyone visited at level k makes their not-yet-reached friends eligible
//     for level k+1.
//   - Within a level, people are visited in ascending name order.
//   - A guest.Filter decides who is emitted. People rejected by the filter are
//     still visited, so invitations keep flowing through them.
//   - WithMaxLevel(m) stops after level m; m < 1 yields nothing.
//
// Candidate lifecycle
//
//	unavailable --(friend visited)--> available --(level-up)--> ready --(visited)--> used
//
//	Transitions only move forward. A used candidate is never scheduled again.
//
// Pulling
//
//	Next returns one person at a time, or (nil, false, nil) once the list is
//	complete. The engine keeps exactly one accepted person buffered ahead of
//	the caller, which makes Done an exact, side-effect-free query: it reports
//	true iff the following Next reports exhaustion. Hooks therefore run one
//	accepted person ahead of what Next has returned.
//
//	New fills that buffer, so it already walks up to the first accepted
//	person. With a filter that accepts nobody reachable, New walks the whole
//	reachable graph (O(n·L + e)) before returning, and every OnVisit call
//	happens inside New.
//
// Errors
//
//   - ErrInvalidArgument: missing filter, or a malformed people slice.
//   - ErrGraphIntegrity: a friend name that matches nobody in the graph.
//     Reported when that reference is first followed; the Iterator then keeps
//     returning the same error.
//
// Complexity (n = people, e = friend references, L = levels reached)
//
//   - Time:   O(n log n + n·L + e)
//   - Memory: O(n)
//
// Concurrency
//
//	An Iterator is not safe for concurrent use. Independent Iterators over the
//	same Persons may run in parallel; Persons are only read.
//
// Usage
//
//	it, err := invite.New(people, guest.FemaleOnly, invite.WithMaxLevel(2))
//	if err != nil {
//		// ErrInvalidArgument, candidate.ErrDuplicateName, ...
//	}
//	for p, err := range it.All() {
//		if err != nil {
//			// ErrGraphIntegrity
//		}
//		fmt.Println(p.Name)
//	}
package invite
