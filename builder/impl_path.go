// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// impl_path.go - Path(n): a chain of acquaintances.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPeople).
//   - The first person of the block is a best friend.
//   - Links (i-1)–i for i=1..n-1, in increasing i.
//   - With a single best friend, person i sits at level i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/guestlist/guest"
)

const (
	methodPath    = "Path"
	minPathPeople = 1
)

// Path returns a Constructor that appends a chain of n people.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathPeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathPeople, ErrTooFewPeople)
		}
		var prev *guest.Person
		for i := 0; i < n; i++ {
			p, err := d.add(cfg, i == 0)
			if err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
			if prev != nil {
				d.link(cfg, prev, p)
			}
			prev = p
		}

		return nil
	}
}
