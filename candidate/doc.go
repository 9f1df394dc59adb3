// Package candidate builds the index a traversal engine works on: one mutable
// Candidate record per guest.Person, stored in a dense slice sorted by name,
// plus an O(1) lookup from name to slice position.
//
// What
//
//   - Build(people, filter) creates the records, evaluates the filter once per
//     person, sorts by Person.Name (byte-wise, ascending) and records positions.
//   - Index.Position(name) resolves a friend reference to a position.
//   - Index.At(pos) returns the record at a position for in-place mutation.
//
// Determinism
//
//	Records are sorted by name, so a scan from position 0 upward always visits
//	people in ascending name order whatever order the input was given in.
//
// Ownership
//
//	An Index and its Candidates belong to exactly one engine. The Person each
//	record points at is shared and never written.
//
// Errors
//
//	ErrNilPerson     - the input contains a nil *guest.Person.
//	ErrNilFilter     - no filter was supplied.
//	ErrDuplicateName - two people share a name; resolution would be ambiguous.
package candidate
