// Package lvcover computes exact minimum set covers: for a finite universe
// and an ordered collection of its subsets, it finds the smallest number of
// subsets whose union is the whole universe and lists every combination of
// that size that achieves it.
//
// Under the hood, everything is organized in small packages:
//
//	combin/     lexicographic k-combination iterator over {0,…,n-1}
//	cover/      coverage test, set-based and bit-vector (Index)
//	setcover/   two-phase Solver: bound search, then exhaustive enumeration
//	builder/    deterministic fixture instances (pairs, windows, random)
//	loader/     text input with legacy two-line header detection
//	render/     1-based "Solutions:" listing
//	cmd/setcover command-line front end
//
// Quick example, the triangle instance:
//
//	{1,2}  {2,3}  {1,3}
//
// needs two subsets; all three pairs (1 2), (1 3), (2 3) are minimum covers.
//
// The search is exact and exponential in the worst case; it is meant for
// exhaustive offline analysis of small collections.
package lvcover
