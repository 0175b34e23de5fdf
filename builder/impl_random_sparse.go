// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_random_sparse.go: RandomSparse(n, m, p).
//
// Model:
//   • n subsets; for each subset i asc and each element j asc, keep element j
//     with independent probability p.
//   • Subsets may come out empty; elements may be absent from every subset.
//
// Contract:
//   • n ≥ 1 and m ≥ 1 (else ErrTooFewElements).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n·m) Bernoulli trials.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling n random subsets over m elements.
func RandomSparse(n, m int, p float64) Constructor {
	return func(subsets *[][]int, cfg builderConfig) error {
		if n < minElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minElements, ErrTooFewElements)
		}
		if m < minElements {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodRandomSparse, m, minElements, ErrTooFewElements)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ { // stable subset order
			s := make([]int, 0, m)
			for j := 0; j < m; j++ { // stable trial order
				var keep bool
				if cfg.rng == nil {
					keep = p == probMax // deterministic for p ∈ {0,1}
				} else {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s = append(s, cfg.element(j))
				}
			}
			*subsets = append(*subsets, s)
		}

		return nil
	}
}
