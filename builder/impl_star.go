// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// impl_star.go - Star(n): one best friend who knows everyone else.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewPeople): a center plus n-1 leaves.
//   - The center is the first person of the block and a best friend.
//   - Links center–leaf in increasing leaf index.

package builder

import "fmt"

const (
	methodStar    = "Star"
	minStarPeople = 2
)

// Star returns a Constructor that appends a center and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarPeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarPeople, ErrTooFewPeople)
		}
		center, err := d.add(cfg, true)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			leaf, err := d.add(cfg, false)
			if err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			d.link(cfg, center, leaf)
		}

		return nil
	}
}
