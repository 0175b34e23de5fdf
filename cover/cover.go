package cover

// IsCover reports whether the union of subsets[i] for i in indices equals
// universe as a set. Duplicate elements in either argument are ignored.
// An index outside the range of subsets makes the answer false.
//
// Complexity: O(Σ|subsets[i]| + |universe|) time and space.
func IsCover[E comparable](subsets [][]E, universe []E, indices []int) bool {
	want := make(map[E]struct{}, len(universe))
	for _, e := range universe {
		want[e] = struct{}{}
	}

	got := make(map[E]struct{}, len(want))
	for _, i := range indices {
		if i < 0 || i >= len(subsets) {
			return false
		}
		for _, e := range subsets[i] {
			if _, ok := want[e]; !ok {
				return false // union would be a strict superset
			}
			got[e] = struct{}{}
		}
	}

	return len(got) == len(want)
}
