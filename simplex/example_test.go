package simplex_test

import (
	"fmt"

	"github.com/letruongzzio/linprog/lp"
	"github.com/letruongzzio/linprog/simplex"
)

// ExampleSolve minimizes -3x - 5y over x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18 with
// x, y ≥ 0 and prints the outcome.
func ExampleSolve() {
	p := lp.Problem{
		C:     []float64{-3, -5},
		A:     [][]float64{{1, 0}, {0, 2}, {3, 2}},
		B:     []float64{4, 12, 18},
		Signs: []lp.Sign{lp.LessEq, lp.LessEq, lp.LessEq},
	}

	sol, err := simplex.Solve(p)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(sol.Status)
	fmt.Println(sol.Objective)
	fmt.Println(sol.X)
	// Output:
	// optimal
	// -36
	// [2 6]
}

// ExampleSolve_maximize shows a maximization with a recorded vertex path.
func ExampleSolve_maximize() {
	p := lp.Problem{
		Direction: lp.Maximize,
		C:         []float64{3, 5},
		A:         [][]float64{{1, 0}, {0, 2}, {3, 2}},
		B:         []float64{4, 12, 18},
		Signs:     []lp.Sign{lp.LessEq, lp.LessEq, lp.LessEq},
	}

	sol, _ := simplex.Solve(p, simplex.WithPath())
	fmt.Println(sol.Objective)
	for _, v := range sol.Path {
		fmt.Println(v.X, v.Objective)
	}
	// Output:
	// 36
	// [0 0] 0
	// [0 6] 30
	// [2 6] 36
}
