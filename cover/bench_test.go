package cover_test

import (
	"testing"

	"github.com/katalvlaran/lvcover/cover"
)

// windows builds n subsets over 1..m where subset i holds w consecutive
// elements starting at i (cyclic).
func windows(n, m, w int) [][]int {
	out := make([][]int, n)
	for i := range out {
		for j := 0; j < w; j++ {
			out[i] = append(out[i], 1+(i+j)%m)
		}
	}

	return out
}

func BenchmarkIsCover_Map(b *testing.B) {
	subsets := windows(64, 64, 8)
	ix := cover.NewIndex(subsets)
	universe := ix.Universe()
	indices := []int{0, 8, 16, 24, 32, 40, 48, 56}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cover.IsCover(subsets, universe, indices)
	}
}

func BenchmarkIndex_IsCover(b *testing.B) {
	ix := cover.NewIndex(windows(64, 64, 8))
	indices := []int{0, 8, 16, 24, 32, 40, 48, 56}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ix.IsCover(indices)
	}
}
