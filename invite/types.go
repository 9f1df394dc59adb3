package invite

import (
	"errors"

	"github.com/katalvlaran/guestlist/guest"
)

// Sentinel errors for invitation traversal.
var (
	// ErrInvalidArgument is returned by New for a missing filter or bad input.
	ErrInvalidArgument = errors.New("invite: invalid argument")

	// ErrGraphIntegrity is returned when a friend name resolves to nobody.
	ErrGraphIntegrity = errors.New("invite: graph integrity violated")
)

// Option configures an Iterator via functional arguments.
type Option func(*Options)

// Options holds the level bound and observation hooks of an Iterator.
type Options struct {
	// MaxLevel is the last level that may be visited. Only honored when
	// Limited is true; values below 1 make the Iterator empty.
	MaxLevel int

	// Limited reports whether MaxLevel applies.
	Limited bool

	// OnVisit is called for every visited person, accepted by the filter or not.
	// level starts at 1 for best friends.
	OnVisit func(p *guest.Person, level int, accepted bool)

	// OnLevelUp is called after a level-up with the new level and the number of
	// candidates that became ready.
	OnLevelUp func(level, promoted int)
}

// DefaultOptions returns Options with:
//   - no level bound
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		MaxLevel:  0,
		Limited:   false,
		OnVisit:   func(*guest.Person, int, bool) {},
		OnLevelUp: func(int, int) {},
	}
}

// WithMaxLevel bounds the traversal to levels 1..m.
//
//	m >= 1: visit at most m levels (m == 1 means best friends only)
//	m < 1:  produce nothing
func WithMaxLevel(m int) Option {
	return func(o *Options) {
		o.MaxLevel = m
		o.Limited = true
	}
}

// WithOnVisit registers a callback run for each visited person.
func WithOnVisit(fn func(p *guest.Person, level int, accepted bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnLevelUp registers a callback run after every successful level-up.
func WithOnLevelUp(fn func(level, promoted int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevelUp = fn
		}
	}
}
