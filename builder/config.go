// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = DefaultIDFn          ("0","1","2",...)
//   - rng       = nil                  (pure unless seeded)
//   - genderFn  = AlternatingGenders   (even male, odd female)
//   - bestRatio = 0                    (only constructor-designated best friends)
//   - oneWay    = false                (friendships are mutual)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/guestlist/guest"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	genderFn  func(idx int) guest.Gender
	bestRatio float64
	oneWay    bool
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		rng:       nil,
		genderFn:  AlternatingGenders,
		bestRatio: 0,
		oneWay:    false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// AlternatingGenders assigns Male to even indices and Female to odd ones.
func AlternatingGenders(idx int) guest.Gender {
	if idx%2 == 0 {
		return guest.Male
	}
	return guest.Female
}
