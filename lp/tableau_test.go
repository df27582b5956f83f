package lp_test

import (
	"math"
	"testing"

	"github.com/letruongzzio/linprog/lp"
)

// classic is Dantzig's textbook problem: min -3x -5y subject to x ≤ 4,
// 2y ≤ 12, 3x + 2y ≤ 18 over non-negative variables. Optimum (2, 6), -36.
func classic() lp.Problem {
	return lp.Problem{
		C:     []float64{-3, -5},
		A:     [][]float64{{1, 0}, {0, 2}, {3, 2}},
		B:     []float64{4, 12, 18},
		Signs: []lp.Sign{lp.LessEq, lp.LessEq, lp.LessEq},
	}
}

func mustNormalize(t *testing.T, p lp.Problem) *lp.Standard {
	t.Helper()
	std, err := lp.Normalize(p)
	if err != nil {
		t.Fatal(err)
	}

	return std
}

// ------------------------------------------------------------------------
// 1. Natural identity basis: all-≤ problems need no Phase 1.
// ------------------------------------------------------------------------

func TestNewTableau_SlackBasis(t *testing.T) {
	std := mustNormalize(t, classic())
	tab := lp.NewTableau(std, lp.AutoBasis)

	if tab.NeedsPhase1() {
		t.Fatal("NeedsPhase1() = true; want false for an all-slack basis")
	}
	if got, want := tab.Cols(), std.Cols(); got != want {
		t.Fatalf("Cols() = %d; want %d (no artificials)", got, want)
	}
	wantBasis := []int{2, 3, 4}
	for r, b := range tab.Basis {
		if b != wantBasis[r] {
			t.Errorf("Basis[%d] = %d; want %d", r, b, wantBasis[r])
		}
	}
	// With zero-cost slacks basic, the objective row is the raw cost vector.
	if tab.At(0, 0) != -3 || tab.At(0, 1) != -5 {
		t.Errorf("objective row = [%v %v]; want [-3 -5]", tab.At(0, 0), tab.At(0, 1))
	}
	if got := tab.Objective(); got != 0 {
		t.Errorf("Objective() = %v; want 0 at the origin", got)
	}
}

// ------------------------------------------------------------------------
// 2. Structural unit columns can serve as the basis; reduced costs of
//    basic columns are zero after the reduction.
// ------------------------------------------------------------------------

func TestNewTableau_StructuralUnitBasisReduced(t *testing.T) {
	p := lp.Problem{
		C:     []float64{3, 4},
		A:     [][]float64{{1, 0}, {0, 1}},
		B:     []float64{2, 3},
		Signs: []lp.Sign{lp.Equal, lp.Equal},
	}
	std := mustNormalize(t, p)
	tab := lp.NewTableau(std, lp.AutoBasis)

	if tab.NeedsPhase1() {
		t.Fatal("NeedsPhase1() = true; want false: both columns are unit vectors")
	}
	for r, b := range tab.Basis {
		if got := tab.At(0, b); math.Abs(got) > lp.Tol {
			t.Errorf("reduced cost of basic column %d (row %d) = %v; want 0", b, r, got)
		}
	}
	if got, want := tab.Objective(), 18.0; math.Abs(got-want) > lp.Tol {
		t.Errorf("Objective() = %v; want %v (3·2 + 4·3)", got, want)
	}
}

// ------------------------------------------------------------------------
// 3. Rows without a unit column receive artificial variables.
// ------------------------------------------------------------------------

func TestNewTableau_ArtificialsForUncoveredRows(t *testing.T) {
	p := lp.Problem{
		C:     []float64{2, 3},
		A:     [][]float64{{1, 1}, {1, -1}},
		B:     []float64{1, 0},
		Signs: []lp.Sign{lp.GreaterEq, lp.Equal},
	}
	std := mustNormalize(t, p)
	tab := lp.NewTableau(std, lp.AutoBasis)

	if !tab.NeedsPhase1() {
		t.Fatal("NeedsPhase1() = false; want true: no row has a unit column")
	}
	// Two artificial columns beyond the standard-form ones.
	if got, want := tab.Cols(), std.Cols()+2; got != want {
		t.Fatalf("Cols() = %d; want %d", got, want)
	}
	// Phase-1 objective value is the artificial sum: b₀ + b₁ = 1.
	if got, want := tab.Objective(), 1.0; math.Abs(got-want) > lp.Tol {
		t.Errorf("Objective() = %v; want %v", got, want)
	}
}

func TestNewTableau_ForceArtificial(t *testing.T) {
	std := mustNormalize(t, classic())
	tab := lp.NewTableau(std, lp.ForceArtificial)

	if !tab.NeedsPhase1() {
		t.Fatal("NeedsPhase1() = false; want true under ForceArtificial")
	}
	if got, want := tab.Cols(), std.Cols()+std.Rows(); got != want {
		t.Fatalf("Cols() = %d; want %d (one artificial per row)", got, want)
	}
}

// ------------------------------------------------------------------------
// 4. Feasibility invariant of the initial tableau.
// ------------------------------------------------------------------------

func TestNewTableau_RHSNonNegative(t *testing.T) {
	p := lp.Problem{
		C:     []float64{1, 2},
		A:     [][]float64{{1, 1}, {-1, 2}},
		B:     []float64{-3, 4},
		Signs: []lp.Sign{lp.LessEq, lp.GreaterEq},
	}
	tab := lp.NewTableau(mustNormalize(t, p), lp.AutoBasis)
	for r := 0; r < tab.Rows(); r++ {
		if tab.RHS(r) < 0 {
			t.Errorf("RHS(%d) = %v; want non-negative", r, tab.RHS(r))
		}
	}
}

// ------------------------------------------------------------------------
// 5. BasicSolution reads basic values off the right-hand side.
// ------------------------------------------------------------------------

func TestTableau_BasicSolution(t *testing.T) {
	tab := lp.NewTableau(mustNormalize(t, classic()), lp.AutoBasis)
	x := tab.BasicSolution()

	want := []float64{0, 0, 4, 12, 18}
	if len(x) != len(want) {
		t.Fatalf("len(BasicSolution()) = %d; want %d", len(x), len(want))
	}
	for j := range want {
		if x[j] != want[j] {
			t.Errorf("x[%d] = %v; want %v", j, x[j], want[j])
		}
	}
}

// ------------------------------------------------------------------------
// 6. Snapshots copy, not alias, the tableau storage.
// ------------------------------------------------------------------------

func TestTableau_SnapshotIsACopy(t *testing.T) {
	tab := lp.NewTableau(mustNormalize(t, classic()), lp.AutoBasis)
	snap := tab.Snapshot()
	if snap.Rows != tab.Rows()+1 || snap.Cols != tab.Cols()+1 {
		t.Fatalf("snapshot dims = %d×%d; want %d×%d", snap.Rows, snap.Cols, tab.Rows()+1, tab.Cols()+1)
	}

	before := snap.Data[snap.Cols-1] // objective-row rhs cell
	tab.Step(lp.RuleDantzig, nil, 0)
	if snap.Data[snap.Cols-1] != before {
		t.Error("snapshot mutated by a later pivot; want an independent copy")
	}
}
