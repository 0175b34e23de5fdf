// Package builder produces deterministic set-cover instances for tests,
// examples and benchmarks.
//
// An instance is an ordered subset collection ([][]int). BuildInstance
// resolves functional options into an immutable builderConfig and applies
// Constructors in order, each appending subsets to the same collection.
//
// Constructors:
//
//   - Whole(m)              one subset holding every element.
//   - Singletons(m)         m subsets {e}, so k* = m.
//   - Pairs(m)              every 2-subset of the m elements, lexicographic.
//   - Windows(m, w)         m cyclic windows of w consecutive elements.
//   - RandomSparse(n, m, p) n subsets, each element kept with probability p.
//
// Elements are base, base+1, …, base+m-1 with base = 1 unless overridden by
// WithElementBase. Stochastic constructors require WithSeed or WithRand.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical output.
//   - Validation errors are sentinels (ErrTooFewElements,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped
//     with the constructor name; constructors never panic.
//   - Option constructors panic on meaningless values (nil RNG).
package builder
