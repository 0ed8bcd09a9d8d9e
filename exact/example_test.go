package exact_test

import (
	"fmt"

	"github.com/xosmig/breaking-the-cycle/builder"
	"github.com/xosmig/breaking-the-cycle/core"
	"github.com/xosmig/breaking-the-cycle/exact"
)

// A looped vertex is always taken; the 4-cycle needs one more.
func ExampleSolve() {
	g := core.MustFromEdges(
		[2]int{0, 0},
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1},
	)
	sol, ok := exact.Solve(g)
	fmt.Println(sol, ok)

	_, ok = exact.Solve(g, exact.WithUpperBound(1))
	fmt.Println(ok)
	// Output:
	// [0 1] true
	// false
}

func ExampleSolveWithStats() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
	var stats exact.Counters
	sol, _ := exact.SolveWithStats(g, &stats)
	fmt.Println(sol)
	fmt.Println(stats.Splits, stats.Components)
	// Output:
	// [0 3]
	// 1 2
}
