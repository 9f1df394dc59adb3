// Package guest defines the Person record that a guest graph is built from
// and the Filter capability that decides who may appear on an invitation list.
//
// What
//
//   - Person: a named node with a gender, a best-friend flag and an ordered
//     list of friend names. Names are unique across a graph.
//   - Filter: a single-method predicate over a Person. AcceptAll, MaleOnly and
//     FemaleOnly are ready-made values; FilterFunc adapts any function.
//   - Validate: structural checks for records loaded from outside the process.
//
// Why
//
//	The traversal engine (package invite) never inspects a Person beyond its
//	name, best flag and friend list. Everything else, such as gender, is
//	meaningful only to filters, so filters live next to the record they read.
//
// Persons are shared by reference and must be treated as read-only once handed
// to an engine; several engines may read the same Persons concurrently.
package guest
