// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// api.go - public entry point and the draft roster constructors write into.

package builder

import (
	"fmt"

	"github.com/katalvlaran/guestlist/guest"
)

// Probability domain shared by RandomSparse and WithBestRatio.
const (
	probMin = 0.0
	probMax = 1.0
)

// Constructor appends a block of people and their friendships to a draft.
// Constructors validate parameters first and leave the draft untouched on
// validation failure.
type Constructor func(d *draft, cfg builderConfig) error

// draft is the roster under construction.
type draft struct {
	people []*guest.Person
	byName map[string]*guest.Person
}

// add creates the next person. best forces the best flag; otherwise the
// configured best ratio decides.
func (d *draft) add(cfg builderConfig, best bool) (*guest.Person, error) {
	idx := len(d.people)
	name := cfg.idFn(idx)
	if _, dup := d.byName[name]; dup {
		return nil, fmt.Errorf("name %q repeated at index %d: %w", name, idx, ErrConstructFailed)
	}
	if !best && cfg.bestRatio > 0 {
		if cfg.rng == nil {
			return nil, fmt.Errorf("WithBestRatio: %w", ErrNeedRandSource)
		}
		best = cfg.rng.Float64() < cfg.bestRatio
	}
	p := &guest.Person{Name: name, Gender: cfg.genderFn(idx), Best: best}
	d.people = append(d.people, p)
	d.byName[name] = p

	return p, nil
}

// link records that a knows b, and b knows a unless the config is one-way.
func (d *draft) link(cfg builderConfig, a, b *guest.Person) {
	a.Friends = append(a.Friends, b.Name)
	if !cfg.oneWay && a != b {
		b.Friends = append(b.Friends, a.Name)
	}
}

// BuildPeople resolves opts and applies every constructor in order.
// Errors are wrapped as "BuildPeople: ..." and keep the builder sentinels
// reachable through errors.Is.
func BuildPeople(opts []BuilderOption, cons ...Constructor) ([]*guest.Person, error) {
	cfg := newBuilderConfig(opts...)
	d := &draft{byName: make(map[string]*guest.Person)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPeople: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildPeople: %w", err)
		}
	}

	return d.people, nil
}
