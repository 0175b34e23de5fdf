package setcover_test

import (
	"testing"

	"github.com/katalvlaran/lvcover/builder"
	"github.com/katalvlaran/lvcover/setcover"
)

// BenchmarkSolve_Pairs7 solves the 21 edges of K7 as subsets (k* = 4).
func BenchmarkSolve_Pairs7(b *testing.B) {
	subsets, _ := builder.BuildInstance(nil, builder.Pairs(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = setcover.Solve(subsets)
	}
}

// BenchmarkSolve_Pairs7_Workers4 runs phase 2 on four goroutines.
func BenchmarkSolve_Pairs7_Workers4(b *testing.B) {
	subsets, _ := builder.BuildInstance(nil, builder.Pairs(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = setcover.Solve(subsets, setcover.WithWorkers(4))
	}
}

// BenchmarkSolve_RandomSparse16 solves a seeded random 16×24 instance.
func BenchmarkSolve_RandomSparse16(b *testing.B) {
	subsets, _ := builder.BuildInstance(
		[]builder.BuilderOption{builder.WithSeed(2024)},
		builder.RandomSparse(16, 24, 0.25),
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = setcover.Solve(subsets)
	}
}
