// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// options.go - functional options. Meaningless values panic here, at the
// call site that supplied them, instead of surfacing later as errors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/guestlist/guest"
)

// BuilderOption mutates the builder configuration before constructors run.
type BuilderOption func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = rng }
}

// WithIDScheme sets how a running index becomes a person's name. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithGenders sets how a running index becomes a gender. Panics on nil.
func WithGenders(fn func(idx int) guest.Gender) BuilderOption {
	if fn == nil {
		panic("builder: WithGenders(nil)")
	}
	return func(c *builderConfig) { c.genderFn = fn }
}

// WithBestRatio marks each generated person best with probability r, on top
// of the people a constructor designates. r > 0 requires an RNG.
// Panics if r is outside [0,1].
func WithBestRatio(r float64) BuilderOption {
	if r < probMin || r > probMax {
		panic(fmt.Sprintf("builder: WithBestRatio(%g) not in [0,1]", r))
	}
	return func(c *builderConfig) { c.bestRatio = r }
}

// WithOneWay makes every generated friendship one-directional. Path, Star and
// Complete link the lower index to the higher one; RandomSparse tries both
// orders independently.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) { c.oneWay = true }
}
