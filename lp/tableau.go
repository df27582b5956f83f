package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BasisHint tells the tableau builder how to obtain the initial basis.
type BasisHint int

const (
	// AutoBasis reuses natural unit columns (slacks of ≤ rows, or any
	// column that is already a unit vector) and introduces artificial
	// variables only for rows left without one.
	AutoBasis BasisHint = iota

	// ForceArtificial introduces one artificial variable per row regardless
	// of available unit columns, the textbook two-phase construction.
	ForceArtificial
)

// Tableau is the dense simplex tableau: a (m+1)×(cols+1) row-major matrix
// whose row 0 holds the reduced costs (with −objective in its right-hand
// cell) and whose rows 1..m hold the constraint rows with the current
// right-hand side in the last column.
//
// Invariants maintained across pivots: the submatrix over the columns in
// Basis is the identity, and on feasible tableaus every right-hand entry is
// ≥ −Tol. The backing storage is one contiguous buffer (gonum's row-major
// Dense), so a pivot is a strided sweep with no per-iteration allocation.
type Tableau struct {
	m *mat.Dense

	rows int // constraint rows
	cols int // variable columns, artificials included, excluding the rhs

	// Basis maps each constraint row to the column of its basic variable.
	Basis []int

	firstArt int // index of the first artificial column; == cols when none
	trueObj  []float64
}

// NewTableau builds the initial tableau for a standard-form problem.
//
// With AutoBasis, rows covered by a natural unit column use it as their
// initial basic variable and only the remaining rows receive an artificial
// column (+1); with ForceArtificial every row does. When artificials exist
// the installed objective row is the Phase-1 objective (sum of artificials)
// reduced against the basis, and the true objective is retained for
// installation at the phase switch; otherwise the true objective row is
// installed directly. Either way the reduced cost of every basic column
// starts at zero.
//
// Complexity: O(m·cols).
func NewTableau(s *Standard, hint BasisHint) *Tableau {
	rows, n := s.Rows(), s.Cols()

	basis := make([]int, rows)
	for r := range basis {
		basis[r] = -1
	}
	if hint == AutoBasis {
		for j := 0; j < n; j++ {
			r := unitRow(s.A, j)
			if r >= 0 && basis[r] < 0 {
				basis[r] = j
			}
		}
	}

	numArt := 0
	for _, b := range basis {
		if b < 0 {
			numArt++
		}
	}
	cols := n + numArt

	t := &Tableau{
		m:        mat.NewDense(rows+1, cols+1, nil),
		rows:     rows,
		cols:     cols,
		Basis:    basis,
		firstArt: n,
		trueObj:  make([]float64, cols),
	}

	// Constraint rows, artificial unit columns, right-hand side.
	art := n
	for r := 0; r < rows; r++ {
		for j := 0; j < n; j++ {
			t.m.Set(r+1, j, s.A.At(r, j))
		}
		t.m.Set(r+1, cols, s.B.AtVec(r))
		if basis[r] < 0 {
			t.m.Set(r+1, art, 1)
			basis[r] = art
			art++
		}
	}

	for j := 0; j < n; j++ {
		t.trueObj[j] = s.Obj.AtVec(j)
	}

	if numArt > 0 {
		phase1 := make([]float64, cols)
		for j := n; j < cols; j++ {
			phase1[j] = 1
		}
		t.installObjective(phase1)
	} else {
		t.installObjective(t.trueObj)
	}

	return t
}

// unitRow returns the row index r when column j of a is the unit vector
// e_r, or -1 when it is not.
func unitRow(a *mat.Dense, j int) int {
	rows, _ := a.Dims()
	unit := -1
	for r := 0; r < rows; r++ {
		v := a.At(r, j)
		switch {
		case math.Abs(v) <= Tol:
			continue
		case math.Abs(v-1) <= Tol && unit < 0:
			unit = r
		default:
			return -1
		}
	}

	return unit
}

// Rows returns the number of constraint rows.
func (t *Tableau) Rows() int { return t.rows }

// Cols returns the number of variable columns (artificials included).
func (t *Tableau) Cols() int { return t.cols }

// At returns the tableau entry at row r (0 is the objective row, 1..m the
// constraint rows) and column c (Cols() is the right-hand side).
func (t *Tableau) At(r, c int) float64 { return t.m.At(r, c) }

// RHS returns the current right-hand side of constraint row r (0-based).
func (t *Tableau) RHS(r int) float64 { return t.m.At(r+1, t.cols) }

// Objective returns the objective value of the current basic solution under
// the installed objective row.
func (t *Tableau) Objective() float64 { return -t.m.At(0, t.cols) }

// NeedsPhase1 reports whether artificial columns are present, i.e. whether
// a feasibility phase must run before the true objective is optimized.
func (t *Tableau) NeedsPhase1() bool { return t.firstArt < t.cols }

// BasicSolution returns the value of every variable column at the current
// vertex: basic columns take their row's right-hand side, the rest are 0.
func (t *Tableau) BasicSolution() []float64 {
	x := make([]float64, t.cols)
	for r, j := range t.Basis {
		x[j] = t.m.At(r+1, t.cols)
	}

	return x
}

// TrueObjectiveAt evaluates the true (Phase-2) objective at a standard-space
// point, regardless of which objective row is currently installed.
func (t *Tableau) TrueObjectiveAt(x []float64) float64 {
	var z float64
	for j, c := range t.trueObj {
		z += c * x[j]
	}

	return z
}

// Snapshot copies the current tableau for tabular tracing.
func (t *Tableau) Snapshot() Snapshot {
	raw := t.m.RawMatrix()
	data := make([]float64, len(raw.Data))
	copy(data, raw.Data)

	return Snapshot{Rows: t.rows + 1, Cols: t.cols + 1, Data: data}
}

// installObjective sets row 0 to the given cost vector reduced against the
// current basis:
//
//	row0[j]   = cost[j] − Σ_r cost[Basis[r]]·a[r][j]
//	row0[rhs] = −Σ_r cost[Basis[r]]·b[r]
//
// so every basic column starts with reduced cost 0 and Objective() reports
// Σ cost_B·b. Complexity: O(m·cols).
func (t *Tableau) installObjective(cost []float64) {
	for j := 0; j <= t.cols; j++ {
		var c float64
		if j < t.cols {
			c = cost[j]
		}
		for r := 0; r < t.rows; r++ {
			c -= cost[t.Basis[r]] * t.m.At(r+1, j)
		}
		t.m.Set(0, j, c)
	}
}

// InstallTrueObjective replaces the objective row with the true cost vector
// reduced against the current basis. Called at the Phase 1 → Phase 2
// transition, after the artificial columns have been dropped.
func (t *Tableau) InstallTrueObjective() {
	t.installObjective(t.trueObj)
}

// DropArtificials removes the artificial columns at the end of a successful
// Phase 1. An artificial that is still basic must sit at value 0 (Phase 1
// reached optimum 0); it is swapped out for a structural column via a
// forced degenerate pivot when its row carries any usable coefficient, and
// the row is deleted as linearly redundant (EventRowDropped) when it does
// not. The forced-pivot-then-delete policy preserves the row count in the
// common non-redundant case.
//
// iteration is the pivot count used to stamp emitted events.
func (t *Tableau) DropArtificials(trace Tracer, iteration int) {
	if !t.NeedsPhase1() {
		return
	}

	drop := make(map[int]bool)
	for r := 0; r < t.rows; r++ {
		if t.Basis[r] < t.firstArt {
			continue
		}
		j := t.pivotableColumn(r)
		if j >= 0 {
			t.pivot(r, j)
			continue
		}
		drop[r] = true
		trace.Emit(Event{
			Kind:      EventRowDropped,
			Iteration: iteration,
			Detail:    "redundant row removed with its artificial variable",
		})
	}

	// Rebuild without artificial columns and redundant rows. Artificials
	// are the trailing columns, so the copy is a truncation per row.
	newRows := t.rows - len(drop)
	newCols := t.firstArt
	nm := mat.NewDense(newRows+1, newCols+1, nil)
	basis := make([]int, 0, newRows)
	dst := 1
	for r := 0; r < t.rows; r++ {
		if drop[r] {
			continue
		}
		for j := 0; j < newCols; j++ {
			nm.Set(dst, j, t.m.At(r+1, j))
		}
		nm.Set(dst, newCols, t.m.At(r+1, t.cols))
		basis = append(basis, t.Basis[r])
		dst++
	}

	t.m = nm
	t.rows = newRows
	t.cols = newCols
	t.Basis = basis
	t.firstArt = newCols
	t.trueObj = t.trueObj[:newCols]
}

// pivotableColumn returns the lowest non-artificial column with a nonzero
// coefficient in row r, or -1 when the row is all zeros outside the
// artificial block. The right-hand side of r is 0 here, so pivoting on a
// coefficient of either sign keeps the tableau feasible.
func (t *Tableau) pivotableColumn(r int) int {
	for j := 0; j < t.firstArt; j++ {
		if math.Abs(t.m.At(r+1, j)) > Tol {
			return j
		}
	}

	return -1
}
