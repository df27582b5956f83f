package lp

import "math"

// PivotResult classifies the outcome of one pivot attempt.
type PivotResult int

const (
	// Pivoted: a basis exchange was performed; the tableau was mutated.
	Pivoted PivotResult = iota

	// OptimalReached: no column has a negative reduced cost; the current
	// basic solution is optimal for the installed objective.
	OptimalReached

	// UnboundedAt: an improving column exists but no row limits it; the
	// problem is unbounded along that column's direction.
	UnboundedAt
)

// PivotStep reports one call to Step: the outcome, the entering column and
// leaving row when a pivot happened (Enter also identifies the unbounded
// direction for UnboundedAt), and whether the step was degenerate
// (zero ratio, objective unchanged).
type PivotStep struct {
	Result     PivotResult
	Enter      int
	Leave      int
	Degenerate bool
}

// Step performs one simplex iteration on the tableau under the given
// entering rule:
//
//   - entering column: RuleDantzig takes the most negative reduced cost
//     (lowest index on ties), RuleBland the lowest-indexed negative one;
//     no candidate below −Tol means OptimalReached;
//   - leaving row: among rows with a strictly positive coefficient in the
//     entering column, the one minimizing rhs/coefficient, ties broken by
//     lowest basic-variable index (with Bland's entering rule this
//     tie-break is what prevents cycling); no candidate means UnboundedAt;
//   - the pivot scales the leaving row and eliminates the entering column
//     from every other row, objective row included, restoring the identity
//     over the basic columns.
//
// The tableau and Basis are mutated in place. A zero-ratio step is flagged
// Degenerate and emitted through trace as EventDegeneratePivot; iteration
// only stamps that event.
//
// Complexity: O(m·cols) per call.
func (t *Tableau) Step(rule Rule, trace Tracer, iteration int) PivotStep {
	enter := t.entering(rule)
	if enter < 0 {
		return PivotStep{Result: OptimalReached, Enter: -1, Leave: -1}
	}

	leave := t.leaving(enter)
	if leave < 0 {
		return PivotStep{Result: UnboundedAt, Enter: enter, Leave: -1}
	}

	degenerate := t.RHS(leave) < Tol
	if degenerate {
		trace.Emit(Event{
			Kind:      EventDegeneratePivot,
			Iteration: iteration,
			Detail:    "zero-ratio pivot: objective value unchanged",
		})
	}

	t.pivot(leave, enter)

	return PivotStep{Result: Pivoted, Enter: enter, Leave: leave, Degenerate: degenerate}
}

// entering selects the entering column under the given rule, or -1 when
// every reduced cost is ≥ −Tol.
func (t *Tableau) entering(rule Rule) int {
	best, bestRed := -1, -Tol
	for j := 0; j < t.cols; j++ {
		red := t.m.At(0, j)
		if red >= -Tol {
			continue
		}
		if rule == RuleBland {
			return j
		}
		if red < bestRed {
			best, bestRed = j, red
		}
	}

	return best
}

// leaving runs the minimum-ratio test over the entering column, breaking
// ties by lowest basic-variable index. Returns -1 when no coefficient in
// the column is strictly positive.
func (t *Tableau) leaving(enter int) int {
	best, bestRatio := -1, math.Inf(1)
	for r := 0; r < t.rows; r++ {
		a := t.m.At(r+1, enter)
		if a <= Tol {
			continue
		}
		ratio := t.m.At(r+1, t.cols) / a
		switch {
		case ratio < bestRatio-Tol:
			best, bestRatio = r, ratio
		case ratio < bestRatio+Tol && best >= 0 && t.Basis[r] < t.Basis[best]:
			best = r
		}
	}

	return best
}

// pivot exchanges the basic variable of constraint row `row` for column
// `col`: the pivot row is divided by the pivot element and col is
// eliminated from every other row by subtraction. Works on the contiguous
// row-major backing storage; no allocation.
func (t *Tableau) pivot(row, col int) {
	raw := t.m.RawMatrix()
	stride := raw.Stride
	width := t.cols + 1

	// Scale the pivot row so the pivot element becomes exactly 1.
	pr := raw.Data[(row+1)*stride : (row+1)*stride+width]
	p := pr[col]
	for j := range pr {
		pr[j] /= p
	}
	pr[col] = 1

	// Eliminate the entering column everywhere else, objective row included.
	for i := 0; i <= t.rows; i++ {
		if i == row+1 {
			continue
		}
		ri := raw.Data[i*stride : i*stride+width]
		f := ri[col]
		if f == 0 {
			continue
		}
		for j := range ri {
			ri[j] -= f * pr[j]
		}
		ri[col] = 0
	}

	t.Basis[row] = col
}
