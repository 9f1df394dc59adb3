// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w.

package builder

import "errors"

// ErrTooFewPeople indicates a size parameter below the constructor's minimum.
var ErrTooFewPeople = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not keep the roster valid,
// e.g. the IDFn produced the same name twice, or a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")
