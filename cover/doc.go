// Package cover decides whether a combination of subsets covers a universe.
//
// Two forms are provided:
//
//   - IsCover: a direct set-based check over arbitrary comparable elements.
//     Useful as a reference and for one-off queries.
//   - Index: a precomputed form that maps every distinct element to a stable
//     bit position (first-appearance order) and stores each subset as a
//     fixed-width bit list. Index.IsCover unions bit lists with OR and
//     compares the population count against the universe size, so a check
//     costs O(k·⌈|U|/8⌉) instead of hash-set merging.
//
// Both forms use set equality: the union of the referenced subsets must be
// exactly the universe. With no indices, the answer is true iff the
// universe is empty.
//
// An Index is immutable after construction and safe for concurrent reads.
package cover
