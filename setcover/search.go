package setcover

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcover/combin"
	"github.com/katalvlaran/lvcover/cover"
)

// BoundSearch runs phase 1 and returns k*, the minimum cover size of ix.
//
// The scan starts at bound = ix.Len(). Each bound is scanned from its first
// combination; the first cover found moves the search to bound-1, and a
// full scan without a cover stops it. The result is the last bound that
// produced a cover. Bound 0 is the floor: a cover there ends the search.
//
// Complexity: O(Σ C(n,b)) coverage tests for b = n…k*-1 in the worst case.
func BoundSearch[E comparable](ix *cover.Index[E], opts Options) (int, error) {
	var (
		n     = ix.Len()
		good  = -1 // last bound that produced a cover
		bound = n
	)
	for bound >= 0 {
		opts.emit(Event{Kind: EventBoundChecked, Bound: bound, Combinations: combin.Count(n, bound)})

		found, err := firstCover(ix, bound, opts)
		if err != nil {
			return 0, err
		}
		if found == nil {
			break
		}

		good = bound
		opts.emit(Event{Kind: EventBoundDecreased, Bound: bound, Indices: found})
		bound--
	}
	if good < 0 {
		return 0, fmt.Errorf("setcover: BoundSearch(n=%d): %w", n, ErrNoCover)
	}

	opts.emit(Event{Kind: EventBoundFixed, Bound: good})

	return good, nil
}

// firstCover returns a copy of the first size-k cover in lexicographic
// order, or nil when no combination of size k covers the universe.
func firstCover[E comparable](ix *cover.Index[E], k int, opts Options) ([]int, error) {
	it, err := combin.Generate(ix.Len(), k)
	if err != nil {
		return nil, fmt.Errorf("setcover: bound %d: %w", k, err)
	}
	for it.Next() {
		if err = opts.canceled(); err != nil {
			return nil, err
		}
		if c := it.Combination(); ix.IsCover(c) {
			return clone(c), nil
		}
	}

	return nil, nil
}

// EnumerateAll runs phase 2: it returns every size-k cover of ix in
// lexicographic index order and emits EventSolutionFound for each.
//
// With opts.Workers > 1 the combinations are partitioned by their leading
// index and scanned concurrently; the partitions are concatenated in
// leading-index order, so the result is identical to the sequential scan.
func EnumerateAll[E comparable](ix *cover.Index[E], k int, opts Options) ([][]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("setcover: EnumerateAll(k=%d): %w", k, ErrInvalidArgument)
	}

	var (
		n    = ix.Len()
		sols [][]int
		err  error
	)
	if opts.Workers > 1 && k > 0 && k <= n {
		sols, err = enumerateParallel(ix, n, k, opts)
	} else {
		sols, err = enumerateRange(ix, n, k, opts)
	}
	if err != nil {
		return nil, err
	}

	for _, s := range sols {
		opts.emit(Event{Kind: EventSolutionFound, Bound: k, Indices: s})
	}

	return sols, nil
}

// enumerateRange scans all size-k combinations of {0..n-1} sequentially.
func enumerateRange[E comparable](ix *cover.Index[E], n, k int, opts Options) ([][]int, error) {
	it, err := combin.Generate(n, k)
	if err != nil {
		return nil, fmt.Errorf("setcover: EnumerateAll(k=%d): %w", k, err)
	}

	var sols [][]int
	for it.Next() {
		if err = opts.canceled(); err != nil {
			return nil, err
		}
		if c := it.Combination(); ix.IsCover(c) {
			sols = append(sols, clone(c))
		}
	}

	return sols, nil
}

// enumerateLeading scans the size-k combinations whose smallest index is
// first: {first} followed by a (k-1)-combination of {first+1..n-1}.
func enumerateLeading[E comparable](ix *cover.Index[E], n, k, first int, opts Options) ([][]int, error) {
	it, err := combin.Generate(n-first-1, k-1)
	if err != nil {
		return nil, fmt.Errorf("setcover: EnumerateAll(k=%d, first=%d): %w", k, first, err)
	}

	var (
		sols [][]int
		buf  = make([]int, k)
		off  = first + 1
	)
	buf[0] = first
	for it.Next() {
		if err = opts.canceled(); err != nil {
			return nil, err
		}
		for i, x := range it.Combination() {
			buf[i+1] = x + off
		}
		if ix.IsCover(buf) {
			sols = append(sols, clone(buf))
		}
	}

	return sols, nil
}

// enumerateParallel fans the leading indices 0..n-k out over an errgroup
// limited to opts.Workers goroutines. The index is read-only and each
// partition owns its result slot, so no further locking is needed.
func enumerateParallel[E comparable](ix *cover.Index[E], n, k int, opts Options) ([][]int, error) {
	parts := make([][][]int, n-k+1)

	parent := opts.Ctx
	if parent == nil {
		parent = context.Background()
	}
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(opts.Workers)

	local := opts
	local.Ctx = ctx
	local.OnEvent = nil // events are emitted by the caller after the merge

	for first := 0; first <= n-k; first++ {
		g.Go(func() error {
			sols, err := enumerateLeading(ix, n, k, first, local)
			if err != nil {
				return err
			}
			parts[first] = sols

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sols [][]int
	for _, p := range parts {
		sols = append(sols, p...)
	}

	return sols, nil
}

func clone(c []int) []int {
	out := make([]int, len(c))
	copy(out, c)

	return out
}
