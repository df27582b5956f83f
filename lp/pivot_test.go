package lp_test

import (
	"math"
	"testing"

	"github.com/letruongzzio/linprog/lp"
)

// ------------------------------------------------------------------------
// 1. Entering-column selection: Dantzig vs Bland on the classic problem.
// ------------------------------------------------------------------------

func TestStep_DantzigPicksMostNegative(t *testing.T) {
	tab := lp.NewTableau(mustNormalize(t, classic()), lp.AutoBasis)

	step := tab.Step(lp.RuleDantzig, nil, 0)
	if step.Result != lp.Pivoted {
		t.Fatalf("Result = %v; want Pivoted", step.Result)
	}
	// Reduced costs start at [-3 -5]: Dantzig enters column 1, and the
	// ratio test over (skip, 12/2, 18/2) leaves row 1.
	if step.Enter != 1 || step.Leave != 1 {
		t.Fatalf("Enter, Leave = %d, %d; want 1, 1", step.Enter, step.Leave)
	}
	if got, want := tab.Objective(), -30.0; math.Abs(got-want) > lp.Tol {
		t.Errorf("Objective() after pivot = %v; want %v", got, want)
	}
}

func TestStep_BlandPicksLowestIndex(t *testing.T) {
	tab := lp.NewTableau(mustNormalize(t, classic()), lp.AutoBasis)

	step := tab.Step(lp.RuleBland, nil, 0)
	if step.Enter != 0 {
		t.Fatalf("Enter = %d; want 0 (lowest negative reduced cost index)", step.Enter)
	}
	// Column 0 is (1, 0, 3): ratios 4/1 = 4 and 18/3 = 6, so row 0 leaves
	// and x takes value 4.
	if step.Leave != 0 {
		t.Fatalf("Leave = %d; want 0", step.Leave)
	}
	if got, want := tab.Objective(), -12.0; math.Abs(got-want) > lp.Tol {
		t.Errorf("Objective() after pivot = %v; want %v", got, want)
	}
}

// ------------------------------------------------------------------------
// 2. Running Step to optimality reproduces the known optimum.
// ------------------------------------------------------------------------

func TestStep_RunToOptimal(t *testing.T) {
	std := mustNormalize(t, classic())
	tab := lp.NewTableau(std, lp.AutoBasis)

	steps := 0
	for {
		step := tab.Step(lp.RuleDantzig, nil, steps)
		if step.Result != lp.Pivoted {
			if step.Result != lp.OptimalReached {
				t.Fatalf("Result = %v; want OptimalReached", step.Result)
			}
			break
		}
		steps++
	}

	if steps != 2 {
		t.Errorf("pivot count = %d; want 2", steps)
	}
	if got, want := tab.Objective(), -36.0; math.Abs(got-want) > lp.Tol {
		t.Errorf("Objective() = %v; want %v", got, want)
	}
	x := std.Recover(tab.BasicSolution())
	if math.Abs(x[0]-2) > lp.Tol || math.Abs(x[1]-6) > lp.Tol {
		t.Errorf("optimal point = %v; want [2 6]", x)
	}
}

// ------------------------------------------------------------------------
// 3. Unboundedness: improving column with no positive coefficient.
// ------------------------------------------------------------------------

func TestStep_Unbounded(t *testing.T) {
	// min -x subject to -x + y ≤ 1: x can grow without bound.
	p := lp.Problem{
		C:     []float64{-1, 0},
		A:     [][]float64{{-1, 1}},
		B:     []float64{1},
		Signs: []lp.Sign{lp.LessEq},
	}
	tab := lp.NewTableau(mustNormalize(t, p), lp.AutoBasis)

	step := tab.Step(lp.RuleDantzig, nil, 0)
	if step.Result != lp.UnboundedAt {
		t.Fatalf("Result = %v; want UnboundedAt", step.Result)
	}
	if step.Enter != 0 {
		t.Errorf("Enter = %d; want 0 (the unbounded direction)", step.Enter)
	}
}

// ------------------------------------------------------------------------
// 4. Degenerate pivots are flagged and traced.
// ------------------------------------------------------------------------

func TestStep_DegenerateFlagAndEvent(t *testing.T) {
	// min -y subject to x + y ≤ 2, -x + y ≤ 0. The second slack sits at 0,
	// so the first pivot on y has a zero ratio.
	p := lp.Problem{
		C:     []float64{0, -1},
		A:     [][]float64{{1, 1}, {-1, 1}},
		B:     []float64{2, 0},
		Signs: []lp.Sign{lp.LessEq, lp.LessEq},
	}
	tab := lp.NewTableau(mustNormalize(t, p), lp.AutoBasis)

	var events []lp.Event
	trace := lp.Tracer(func(e lp.Event) { events = append(events, e) })

	step := tab.Step(lp.RuleDantzig, trace, 7)
	if step.Result != lp.Pivoted || !step.Degenerate {
		t.Fatalf("step = %+v; want a degenerate pivot", step)
	}
	if len(events) != 1 || events[0].Kind != lp.EventDegeneratePivot {
		t.Fatalf("events = %v; want one EventDegeneratePivot", events)
	}
	if events[0].Iteration != 7 {
		t.Errorf("event iteration = %d; want 7", events[0].Iteration)
	}
	if got := tab.Objective(); math.Abs(got) > lp.Tol {
		t.Errorf("Objective() = %v; want 0 (unchanged by the degenerate pivot)", got)
	}
}

// ------------------------------------------------------------------------
// 5. Min-ratio ties break toward the lowest basic-variable index.
// ------------------------------------------------------------------------

func TestStep_RatioTieBreaksOnBasisIndex(t *testing.T) {
	// Both rows give ratio 2 on the entering column; the slack of row 0
	// has the lower column index, so row 0 leaves.
	p := lp.Problem{
		C:     []float64{-1},
		A:     [][]float64{{1}, {1}},
		B:     []float64{2, 2},
		Signs: []lp.Sign{lp.LessEq, lp.LessEq},
	}
	tab := lp.NewTableau(mustNormalize(t, p), lp.AutoBasis)

	step := tab.Step(lp.RuleDantzig, nil, 0)
	if step.Leave != 0 {
		t.Errorf("Leave = %d; want 0 (lowest basic index on tie)", step.Leave)
	}
}

// ------------------------------------------------------------------------
// 6. Pivoting restores the identity over the basic columns.
// ------------------------------------------------------------------------

func TestStep_BasisColumnsStayUnit(t *testing.T) {
	tab := lp.NewTableau(mustNormalize(t, classic()), lp.AutoBasis)
	tab.Step(lp.RuleDantzig, nil, 0)
	tab.Step(lp.RuleDantzig, nil, 1)

	for r, b := range tab.Basis {
		for i := 0; i < tab.Rows(); i++ {
			want := 0.0
			if i == r {
				want = 1
			}
			if got := tab.At(i+1, b); math.Abs(got-want) > lp.Tol {
				t.Errorf("column %d row %d = %v; want %v", b, i+1, got, want)
			}
		}
		if got := tab.At(0, b); math.Abs(got) > lp.Tol {
			t.Errorf("reduced cost of basic column %d = %v; want 0", b, got)
		}
	}
}
