package setcover_test

import (
	"fmt"

	"github.com/katalvlaran/lvcover/setcover"
)

// ExampleSolver finds every minimum cover of the triangle instance.
// Each pair of subsets covers {1,2,3}; no single subset does.
func ExampleSolver() {
	sv, err := setcover.New([][]int{{1, 2}, {2, 3}, {1, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = sv.Solve(); err != nil {
		fmt.Println("error:", err)
		return
	}

	k, _ := sv.Bound()
	fmt.Println("k* =", k)
	for _, s := range sv.Solutions() {
		fmt.Println(s)
	}

	// Output:
	// k* = 2
	// [0 1]
	// [0 2]
	// [1 2]
}

// ExampleWithOnEvent traces the phase-1 bound search.
func ExampleWithOnEvent() {
	trace := func(ev setcover.Event) {
		switch ev.Kind {
		case setcover.EventBoundChecked:
			fmt.Printf("check %d (%d combinations)\n", ev.Bound, ev.Combinations)
		case setcover.EventBoundFixed:
			fmt.Printf("minimum %d\n", ev.Bound)
		}
	}
	_, _ = setcover.Solve([][]int{{1}, {2}, {1, 2}}, setcover.WithOnEvent(trace))

	// Output:
	// check 3 (1 combinations)
	// check 2 (3 combinations)
	// check 1 (3 combinations)
	// check 0 (1 combinations)
	// minimum 1
}
