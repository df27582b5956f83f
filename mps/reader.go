// Package mps reads MPS problem files into lp.Problem values through the
// GLPK bindings. GLPK is used strictly as a parser here: the handle is
// created, drained into plain Go slices, and deleted before returning;
// the solve itself always runs in this module's own engine.
package mps

import (
	"fmt"
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"

	"github.com/letruongzzio/linprog/lp"
)

// Read parses the MPS file at path and converts it into an lp.Problem.
//
// Row relations are derived from the row bounds GLPK reports: a row with
// only an upper bound becomes ≤, only a lower bound ≥, equal bounds =.
// Column bounds map onto lp.Bound where possible (0/+∞ → NonNegative,
// −∞/+∞ → Free, −∞/0 → NonPositive, 0/0 → Zero); any other finite bound is
// materialized as an extra single-variable constraint row, so the returned
// Problem is self-contained.
//
// The free MPS format is tried first, the fixed format as a fallback.
func Read(path string) (lp.Problem, error) {
	// GLPK's error hook is thread-local state; keep the goroutine pinned
	// while the handle lives.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	h := glpk.New()
	defer h.Delete()

	if err := h.ReadMPS(glpk.MPS_FILE, nil, path); err != nil {
		if err = h.ReadMPS(glpk.MPS_DECK, nil, path); err != nil {
			return lp.Problem{}, fmt.Errorf("mps: read %s: %w", path, err)
		}
	}

	rows, cols := h.NumRows(), h.NumCols()
	p := lp.Problem{
		C:      make([]float64, cols),
		Bounds: make([]lp.Bound, cols),
	}
	if h.ObjDir() == glpk.MAX {
		p.Direction = lp.Maximize
	}

	for j := 1; j <= cols; j++ {
		p.C[j-1] = h.ObjCoef(j)
	}

	// Constraint rows. GLPK indexes from 1 and reports sparse rows.
	for i := 1; i <= rows; i++ {
		dense := make([]float64, cols)
		idxs, vals := h.MatRow(i)
		for k, j := range idxs {
			if j == 0 {
				continue
			}
			dense[j-1] = vals[k]
		}

		lb, ub := h.RowLB(i), h.RowUB(i)
		switch {
		case lb == -math.MaxFloat64 && ub == math.MaxFloat64:
			continue // free row (typically the objective row); no constraint
		case lb == -math.MaxFloat64:
			appendRow(&p, dense, ub, lp.LessEq)
		case ub == math.MaxFloat64:
			appendRow(&p, dense, lb, lp.GreaterEq)
		case lb == ub:
			appendRow(&p, dense, lb, lp.Equal)
		default:
			// Ranged row: one ≥ and one ≤ over the same coefficients.
			appendRow(&p, dense, lb, lp.GreaterEq)
			appendRow(&p, append([]float64(nil), dense...), ub, lp.LessEq)
		}
	}

	// Column bounds.
	for j := 1; j <= cols; j++ {
		lb, ub := h.ColLB(j), h.ColUB(j)
		switch {
		case lb == 0 && ub == math.MaxFloat64:
			p.Bounds[j-1] = lp.NonNegative
		case lb == -math.MaxFloat64 && ub == math.MaxFloat64:
			p.Bounds[j-1] = lp.Free
		case lb == -math.MaxFloat64 && ub == 0:
			p.Bounds[j-1] = lp.NonPositive
		case lb == 0 && ub == 0:
			p.Bounds[j-1] = lp.Zero
		default:
			// General finite bounds become explicit rows over a base domain
			// wide enough to contain them.
			if lb >= 0 {
				p.Bounds[j-1] = lp.NonNegative
			} else {
				p.Bounds[j-1] = lp.Free
			}
			if lb != -math.MaxFloat64 && lb != 0 {
				appendRow(&p, unitRow(cols, j-1), lb, lp.GreaterEq)
			}
			if ub != math.MaxFloat64 {
				appendRow(&p, unitRow(cols, j-1), ub, lp.LessEq)
			}
		}
	}

	if err := p.Validate(); err != nil {
		return lp.Problem{}, fmt.Errorf("mps: %s: %w", path, err)
	}

	return p, nil
}

// appendRow adds one constraint row to the problem in place.
func appendRow(p *lp.Problem, row []float64, rhs float64, sign lp.Sign) {
	p.A = append(p.A, row)
	p.B = append(p.B, rhs)
	p.Signs = append(p.Signs, sign)
}

// unitRow returns a length-n row with a single 1 at column j.
func unitRow(n, j int) []float64 {
	row := make([]float64, n)
	row[j] = 1

	return row
}
