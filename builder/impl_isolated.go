// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// impl_isolated.go - Isolated(n): people nobody knows.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPeople).
//   - No links; nobody is forced best, so unless WithBestRatio promotes them
//     these people are unreachable and never invited.

package builder

import "fmt"

const (
	methodIsolated    = "Isolated"
	minIsolatedPeople = 1
)

// Isolated returns a Constructor that appends n unconnected people.
func Isolated(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minIsolatedPeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedPeople, ErrTooFewPeople)
		}
		for i := 0; i < n; i++ {
			if _, err := d.add(cfg, false); err != nil {
				return fmt.Errorf("%s: %w", methodIsolated, err)
			}
		}

		return nil
	}
}
