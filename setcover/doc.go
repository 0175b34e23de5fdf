// Package setcover computes the exact minimum set cover of a subset
// collection and enumerates every cover of that minimum size.
//
// What:
//
//   - Universe: the union of all subsets; fixed when the Solver is built.
//   - BoundSearch (phase 1): starts at bound = n (all subsets, always a
//     cover), scans the combinations of the current bound and, on the first
//     cover found, restarts one size lower. The first size whose full scan
//     finds nothing ends the phase; the minimum k* is the last size that
//     succeeded. A cover of size 0 (empty universe) ends the phase too, so a
//     negative size is never requested.
//   - EnumerateAll (phase 2): tests every combination of size k* and keeps
//     the covers, in lexicographic index order.
//   - Solver: validates input, owns the universe and drives both phases.
//
// Guarantees:
//
//   - Soundness and completeness: the result holds exactly the size-k*
//     combinations whose union equals the universe.
//   - Minimality: no combination of size k*-1 is a cover.
//   - Determinism: identical inputs give identical, identically ordered
//     results, including with WithWorkers(w > 1).
//   - 0 ≤ k* ≤ n. The empty collection yields k* = 0 and one empty solution.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked once per generated combination.
//   - WithOnEvent(fn)     structured progress events (see EventKind).
//   - WithMaxElement(m)   declare the element domain 0..m; larger values are
//     rejected with ErrInvalidInput.
//   - WithWorkers(w)      partition phase 2 by leading index across w goroutines.
//
// Errors:
//
//   - ErrInvalidInput     negative element, or element outside the declared domain.
//   - ErrInvalidArgument  negative combination size (from package combin).
//   - context errors      when the context is canceled mid-search.
//
// Complexity: exponential in the worst case. Phase 1 costs up to
// Σ C(n,b) for b = n…k*-1, phase 2 costs C(n,k*), and each coverage test
// is O(k·|U|/8) on bit vectors.
package setcover
