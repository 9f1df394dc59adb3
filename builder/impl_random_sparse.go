// SPDX-License-Identifier: MIT
// Package: guestlist/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like acquaintances.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPeople).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - The first person of the block is a best friend.
//   - Mutual mode tries unordered pairs {i,j}, i<j; one-way mode tries ordered
//     pairs (i,j), i≠j. Trials run i ascending, then j ascending.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/guestlist/guest"
)

const (
	methodRandomSparse    = "RandomSparse"
	minRandomSparsePeople = 1
)

// RandomSparse returns a Constructor that appends n people, linking each
// admissible pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparsePeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparsePeople, ErrTooFewPeople)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		block := make([]*guest.Person, n)
		for i := range block {
			person, err := d.add(cfg, i == 0)
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
			block[i] = person
		}

		trial := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.oneWay {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if trial() {
					d.link(cfg, block[i], block[j])
				}
			}
		}

		return nil
	}
}
