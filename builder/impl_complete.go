// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// impl_complete.go - Complete(n): everyone knows everyone.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPeople).
//   - The first person of the block is a best friend.
//   - Links i–j for every i<j, i ascending then j ascending.
//   - No self-links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/guestlist/guest"
)

const (
	methodComplete    = "Complete"
	minCompletePeople = 1
)

// Complete returns a Constructor that appends a clique of n people.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompletePeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompletePeople, ErrTooFewPeople)
		}
		block := make([]*guest.Person, n)
		for i := range block {
			p, err := d.add(cfg, i == 0)
			if err != nil {
				return fmt.Errorf("%s: %w", methodComplete, err)
			}
			block[i] = p
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.link(cfg, block[i], block[j])
			}
		}

		return nil
	}
}
