// Package combin enumerates k-combinations of the index range {0,…,n-1}.
//
// What:
//
//   - Generate(n, k) returns a pull-based Iterator producing every strictly
//     increasing k-tuple drawn from {0,…,n-1}, exactly once, in
//     lexicographic order. The iterator is finite and restartable (Reset).
//   - Seq(n, k) exposes the same sequence as an iter.Seq for range-over-func.
//   - All(n, k) materializes the sequence; Count(n, k) returns C(n,k).
//
// Edge cases:
//
//   - k > n yields an empty sequence.
//   - k = 0 yields exactly one element: the empty tuple.
//   - k < 0 or n < 0 is rejected with ErrInvalidArgument.
//
// Complexity:
//
//   - Next: amortized O(1), worst case O(k).
//   - Memory: O(k) per iterator; no goroutines, no channels.
//
// Example order for Generate(4, 2):
//
//	[0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
package combin
