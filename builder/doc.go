// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// Package builder generates deterministic guest graphs for tests, benchmarks
// and the "guestlist generate" command.
//
// Design contract:
//   - One orchestrator: BuildPeople(opts, cons...). Resolves options once and
//     runs constructors in order against a shared draft roster.
//   - Each constructor appends a fresh block of people; names come from the
//     configured IDFn applied to a running index, so blocks never collide.
//   - Friendships are mutual unless WithOneWay is given.
//   - Determinism: same options, seed and constructor order give the same
//     people, names, genders, best flags and friend order.
//   - Constructors validate parameters and return sentinel errors; option
//     constructors panic on meaningless values (programmer error).
//
// Example:
//
//	people, err := builder.BuildPeople(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithBestRatio(0.05)},
//	    builder.RandomSparse(500, 0.01),
//	    builder.Isolated(3),
//	)
package builder
