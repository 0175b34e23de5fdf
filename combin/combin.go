package combin

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
)

// Iterator walks the k-combinations of {0,…,n-1} in lexicographic order.
//
// Usage:
//
//	it, err := combin.Generate(5, 3)
//	if err != nil { ... }
//	for it.Next() {
//		c := it.Combination() // [0 1 2], [0 1 3], …, [2 3 4]
//	}
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	n, k    int
	cur     []int // current tuple; valid only while started && !done
	started bool
	done    bool
}

// Generate returns an Iterator over all C(n,k) combinations.
// It fails with ErrInvalidArgument when n < 0 or k < 0.
func Generate(n, k int) (*Iterator, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("combin: Generate(n=%d, k=%d): %w", n, k, ErrInvalidArgument)
	}

	return &Iterator{n: n, k: k, cur: make([]int, k)}, nil
}

// N returns the size of the index range.
func (it *Iterator) N() int { return it.n }

// K returns the combination size.
func (it *Iterator) K() int { return it.k }

// Next advances to the following combination and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	// First call: emit the smallest tuple [0, 1, …, k-1].
	if !it.started {
		it.started = true
		if it.k > it.n {
			it.done = true

			return false
		}
		for i := range it.cur {
			it.cur[i] = i
		}

		return true
	}

	// Find the rightmost position that can still be incremented:
	// position j is saturated when cur[j] == n-k+j.
	j := it.k - 1
	for j >= 0 && it.cur[j] == it.n-it.k+j {
		j--
	}
	if j < 0 {
		it.done = true

		return false
	}

	// Bump it and reset the tail to the smallest increasing run.
	it.cur[j]++
	for i := j + 1; i < it.k; i++ {
		it.cur[i] = it.cur[i-1] + 1
	}

	return true
}

// Combination returns the current tuple. The slice is owned by the iterator
// and is overwritten by the next call to Next; copy it to retain it.
func (it *Iterator) Combination() []int {
	return it.cur
}

// Reset rewinds the iterator to before the first combination.
func (it *Iterator) Reset() {
	it.started = false
	it.done = false
}

// Seq returns the combinations as a range-over-func sequence. Each yielded
// slice is a fresh copy, and every range over the sequence starts again
// from the first combination.
func Seq(n, k int) (iter.Seq[[]int], error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("combin: Seq(n=%d, k=%d): %w", n, k, ErrInvalidArgument)
	}

	return func(yield func([]int) bool) {
		it := &Iterator{n: n, k: k, cur: make([]int, k)}
		for it.Next() {
			c := make([]int, k)
			copy(c, it.cur)
			if !yield(c) {
				return
			}
		}
	}, nil
}

// All materializes every combination of size k over {0,…,n-1}.
func All(n, k int) ([][]int, error) {
	seq, err := Seq(n, k)
	if err != nil {
		return nil, err
	}
	out := make([][]int, 0, clampInt(Count(n, k)))
	for c := range seq {
		out = append(out, c)
	}

	return out, nil
}

// Count returns the binomial coefficient C(n,k), saturating at
// math.MaxUint64. It returns 0 for k < 0, n < 0 or k > n.
func Count(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k // symmetry keeps the loop short
	}

	var c uint64 = 1
	for i := 0; i < k; i++ {
		// c·(n-i)/(i+1) is always integral; compute it in 128 bits.
		hi, lo := bits.Mul64(c, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			return math.MaxUint64
		}
		c, _ = bits.Div64(hi, lo, d)
	}

	return c
}

// clampInt converts a count to a capacity hint without overflowing int.
func clampInt(c uint64) int {
	const maxHint = 1 << 20
	if c > maxHint {
		return maxHint
	}

	return int(c)
}
