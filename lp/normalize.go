package lp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// varMap records how one original variable was rewritten into standard-form
// columns. plus == -1 means the variable is pinned at zero and owns no
// column; minus >= 0 means a free variable was split x = x⁺ − x⁻; neg means
// a non-positive variable was substituted x = −x⁺.
type varMap struct {
	plus  int
	minus int
	neg   bool
}

// Standard is a problem in standard form:
//
//	min  Objᵀx   s.t.  A·x = B,  x ≥ 0
//
// produced by Normalize. Rows are the original rows (with negative
// right-hand sides flipped); columns are the rewritten structural variables
// followed by one slack/surplus column per inequality row. The engine
// mutates copies of it, never the Standard itself.
type Standard struct {
	Obj *mat.VecDense // length Cols
	A   *mat.Dense    // Rows × Cols
	B   *mat.VecDense // length Rows, non-negative

	// NumStructural is the number of leading columns that encode original
	// variables; the remaining columns are slack/surplus.
	NumStructural int

	// Negated reports that the original objective was a maximization and
	// was negated; reporting must negate the optimal value back.
	Negated bool

	vars []varMap
}

// Rows returns the number of equality rows.
func (s *Standard) Rows() int { r, _ := s.A.Dims(); return r }

// Cols returns the total number of standard-form columns.
func (s *Standard) Cols() int { _, c := s.A.Dims(); return c }

// Recover maps a standard-space point (length ≥ Cols, extra entries such as
// artificial columns are ignored) back to the original variable space,
// undoing free-variable splits and sign substitutions.
func (s *Standard) Recover(x []float64) []float64 {
	out := make([]float64, len(s.vars))
	for j, v := range s.vars {
		if v.plus < 0 {
			continue // pinned at zero
		}
		val := x[v.plus]
		if v.minus >= 0 {
			val -= x[v.minus]
		}
		if v.neg {
			val = -val
		}
		out[j] = val
	}

	return out
}

// Normalize converts a general-form problem into standard form:
//
//   - every ≤ row gains a +1 slack column, every ≥ row a −1 surplus column,
//     = rows gain nothing;
//   - rows with negative right-hand side are multiplied by −1 (relation
//     flipped) before the auxiliary column is inserted, so B is
//     non-negative and Phase 1 can start from it directly;
//   - free variables are split x = x⁺ − x⁻, non-positive variables are
//     substituted x = −x⁺, zero-pinned variables are dropped;
//   - a maximization objective is negated (the engine always minimizes) and
//     the flip is recorded in Negated.
//
// Fails with ErrMalformedProblem when dimensions are inconsistent.
// Complexity: O(m·n_total) time and memory.
func Normalize(p Problem) (*Standard, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// Stage 1 - assign standard columns to original variables.
	vars := make([]varMap, len(p.C))
	numStruct := 0
	for j := range p.C {
		switch p.boundOf(j) {
		case NonNegative:
			vars[j] = varMap{plus: numStruct, minus: -1}
			numStruct++
		case NonPositive:
			vars[j] = varMap{plus: numStruct, minus: -1, neg: true}
			numStruct++
		case Free:
			vars[j] = varMap{plus: numStruct, minus: numStruct + 1}
			numStruct += 2
		case Zero:
			vars[j] = varMap{plus: -1, minus: -1}
		}
	}

	// Stage 2 - count auxiliary columns (one per inequality row; a sign
	// flip below swaps ≤ and ≥ but never creates or removes one).
	numAux := 0
	for _, s := range p.Signs {
		if s != Equal {
			numAux++
		}
	}
	total := numStruct + numAux
	if total == 0 {
		return nil, fmt.Errorf("%w: every variable is pinned at zero", ErrMalformedProblem)
	}

	// Stage 3 - rewrite rows over the standard columns.
	m := len(p.B)
	a := mat.NewDense(m, total, nil)
	b := mat.NewVecDense(m, nil)
	aux := numStruct
	for i, row := range p.A {
		coefs := make([]float64, total)
		for j, c := range row {
			v := vars[j]
			if v.plus < 0 {
				continue
			}
			if v.neg {
				c = -c
			}
			coefs[v.plus] = c
			if v.minus >= 0 {
				coefs[v.minus] = -c
			}
		}
		rhs := p.B[i]
		sign := p.Signs[i]
		if rhs < 0 {
			for k := range coefs {
				coefs[k] = -coefs[k]
			}
			rhs = -rhs
			switch sign {
			case LessEq:
				sign = GreaterEq
			case GreaterEq:
				sign = LessEq
			}
		}
		switch sign {
		case LessEq:
			coefs[aux] = 1
			aux++
		case GreaterEq:
			coefs[aux] = -1
			aux++
		}
		a.SetRow(i, coefs)
		b.SetVec(i, rhs)
	}

	// Stage 4 - rewrite the objective; the engine minimizes internally.
	obj := mat.NewVecDense(total, nil)
	for j, c := range p.C {
		v := vars[j]
		if v.plus < 0 {
			continue
		}
		if v.neg {
			c = -c
		}
		obj.SetVec(v.plus, c)
		if v.minus >= 0 {
			obj.SetVec(v.minus, -c)
		}
	}
	negated := p.Direction == Maximize
	if negated {
		obj.ScaleVec(-1, obj)
	}

	return &Standard{
		Obj:           obj,
		A:             a,
		B:             b,
		NumStructural: numStruct,
		Negated:       negated,
		vars:          vars,
	}, nil
}
