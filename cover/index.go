package cover

import (
	"github.com/prysmaticlabs/go-bitfield"
)

// Index is the bit-vector encoding of a subset collection over its universe.
// The universe is the union of all subsets.
type Index[E comparable] struct {
	pos   map[E]int          // element -> bit position
	elems []E                // bit position -> element
	bits  []bitfield.Bitlist // per-subset membership, fixed width |U|
	empty bitfield.Bitlist   // zero vector of width |U|, OR identity
}

// NewIndex builds an Index over subsets. Bit positions are assigned in
// first-appearance order, scanning subsets and their elements in order,
// so equal inputs always produce equal indices.
//
// Complexity: O(Σ|subsets[i]|) for the mapping plus O(n·|U|/8) bytes.
func NewIndex[E comparable](subsets [][]E) *Index[E] {
	ix := &Index[E]{pos: make(map[E]int)}

	// Pass 1: stable element -> position mapping.
	for _, s := range subsets {
		for _, e := range s {
			if _, ok := ix.pos[e]; !ok {
				ix.pos[e] = len(ix.elems)
				ix.elems = append(ix.elems, e)
			}
		}
	}

	// Pass 2: encode every subset at the final width.
	width := uint64(len(ix.elems))
	ix.empty = bitfield.NewBitlist(width)
	ix.bits = make([]bitfield.Bitlist, len(subsets))
	for i, s := range subsets {
		b := bitfield.NewBitlist(width)
		for _, e := range s {
			b.SetBitAt(uint64(ix.pos[e]), true)
		}
		ix.bits[i] = b
	}

	return ix
}

// Len returns the number of subsets.
func (ix *Index[E]) Len() int { return len(ix.bits) }

// UniverseSize returns the number of distinct elements.
func (ix *Index[E]) UniverseSize() int { return len(ix.elems) }

// Universe returns the distinct elements in bit-position order.
func (ix *Index[E]) Universe() []E {
	out := make([]E, len(ix.elems))
	copy(out, ix.elems)

	return out
}

// Position returns the bit position of e and whether e is in the universe.
func (ix *Index[E]) Position(e E) (int, bool) {
	p, ok := ix.pos[e]

	return p, ok
}

// Covered returns the number of universe elements covered by the union of
// the referenced subsets. Out-of-range indices contribute nothing.
func (ix *Index[E]) Covered(indices []int) int {
	union := ix.empty
	for _, i := range indices {
		if i < 0 || i >= len(ix.bits) {
			continue
		}
		merged, err := union.Or(ix.bits[i])
		if err != nil {
			// Widths are fixed at construction; a mismatch cannot happen.
			continue
		}
		union = merged
	}

	return int(union.Count())
}

// IsCover reports whether the referenced subsets cover the whole universe.
// Every subset is drawn from the universe, so a full population count is
// equivalent to set equality. An out-of-range index makes the answer false.
func (ix *Index[E]) IsCover(indices []int) bool {
	for _, i := range indices {
		if i < 0 || i >= len(ix.bits) {
			return false
		}
	}

	return ix.Covered(indices) == len(ix.elems)
}
