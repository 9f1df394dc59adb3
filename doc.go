// Package guestlist computes wedding invitation lists from a social graph.
//
// 🚀 What is guestlist?
//
//	A small, dependency-light toolkit that turns "who knows whom" into an
//	ordered, lazily produced list of invitees:
//		• Best friends first, always
//		• Then friends of invited people, one handshake further per level
//		• Alphabetical within a level, so the list is reproducible
//		• Optional level bound and gender (or any other) filter
//
// ✨ How the pieces fit
//
//	guest/     - Person record, Filter capability, ready-made filters
//	candidate/ - name-sorted index of per-person traversal records
//	invite/    - the pull-based, level-synchronized traversal engine
//	roster/    - YAML/JSON guest graph documents
//	builder/   - deterministic synthetic graphs for tests and demos
//	cmd/guestlist - command line front end (invite, compare, generate)
//
// Quick ASCII example:
//
//	    Anna*───Boris───Dmitri
//	      │
//	    Clara
//
//	With Anna as the only best friend the list is Anna, Boris, Clara, Dmitri;
//	with a men-only filter it is Boris, Dmitri, and Anna still passes the
//	invitation on even though she is not listed.
//
//	go get github.com/katalvlaran/guestlist
package guestlist
