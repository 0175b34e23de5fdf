// SPDX-License-Identifier: MIT
// Package: lvcover/builder
//
// impl_basic.go: deterministic constructors: Whole, Singletons, Pairs, Windows.
//
// Determinism:
//   • Subsets are appended in a fixed documented order.
//   • Elements inside a subset are ascending, except cyclic windows which
//     list the window from its start and wrap.

package builder

import "fmt"

const (
	methodWhole      = "Whole"
	methodSingletons = "Singletons"
	methodPairs      = "Pairs"
	methodWindows    = "Windows"

	minElements     = 1
	minPairElements = 2
	minWindow       = 1
)

// Whole appends a single subset {base..base+m-1}. k* = 1 when used alone.
// Complexity: O(m).
func Whole(m int) Constructor {
	return func(subsets *[][]int, cfg builderConfig) error {
		if m < minElements {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodWhole, m, minElements, ErrTooFewElements)
		}
		s := make([]int, m)
		for i := range s {
			s[i] = cfg.element(i)
		}
		*subsets = append(*subsets, s)

		return nil
	}
}

// Singletons appends m subsets {e}, one per element, in ascending order.
// Used alone, the only cover is the whole collection (k* = m).
// Complexity: O(m).
func Singletons(m int) Constructor {
	return func(subsets *[][]int, cfg builderConfig) error {
		if m < minElements {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodSingletons, m, minElements, ErrTooFewElements)
		}
		for i := 0; i < m; i++ {
			*subsets = append(*subsets, []int{cfg.element(i)})
		}

		return nil
	}
}

// Pairs appends every 2-subset {a,b}, a<b, of the m elements in
// lexicographic order; C(m,2) subsets in total. Pairs(3) is the classic
// triangle [[1,2],[1,3],[2,3]].
// Complexity: O(m²).
func Pairs(m int) Constructor {
	return func(subsets *[][]int, cfg builderConfig) error {
		if m < minPairElements {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodPairs, m, minPairElements, ErrTooFewElements)
		}
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				*subsets = append(*subsets, []int{cfg.element(i), cfg.element(j)})
			}
		}

		return nil
	}
}

// Windows appends m cyclic windows: window i holds elements at offsets
// i, i+1, …, i+w-1 (mod m). Requires 1 ≤ w ≤ m.
// Complexity: O(m·w).
func Windows(m, w int) Constructor {
	return func(subsets *[][]int, cfg builderConfig) error {
		if m < minElements {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodWindows, m, minElements, ErrTooFewElements)
		}
		if w < minWindow || w > m {
			return fmt.Errorf("%s: w=%d not in [%d,%d]: %w", methodWindows, w, minWindow, m, ErrTooFewElements)
		}
		for i := 0; i < m; i++ {
			s := make([]int, w)
			for j := 0; j < w; j++ {
				s[j] = cfg.element((i + j) % m)
			}
			*subsets = append(*subsets, s)
		}

		return nil
	}
}
