package lp

import "errors"

// Sentinel errors shared by the solver packages.
var (
	// ErrMalformedProblem indicates inconsistent problem dimensions
	// (rows of A vs. b vs. signs, or columns of A vs. c vs. bounds).
	// Validation is primarily the caller's responsibility; this is the
	// defensive check performed once at solve entry.
	ErrMalformedProblem = errors.New("lp: malformed problem dimensions")

	// ErrNotTwoDimensional indicates that the geometric method was requested
	// for a problem with a number of structural variables other than two.
	ErrNotTwoDimensional = errors.New("lp: geometric method requires exactly 2 variables")
)

// Tol is the process-wide numerical tolerance for zero and feasibility
// comparisons. It is a constant: it is never mutated during a solve.
const Tol = 1e-9

// Direction is the optimization direction of the objective.
type Direction int

const (
	// Minimize the objective cᵀx.
	Minimize Direction = iota

	// Maximize the objective cᵀx. The engine minimizes internally;
	// Normalize negates c and Solution reporting restores the sign.
	Maximize
)

// String returns "min" or "max".
func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}

	return "min"
}

// Sign is the relation of one constraint row.
type Sign int

const (
	// LessEq is Aᵢ·x ≤ bᵢ; normalization appends a +1 slack column.
	LessEq Sign = iota

	// GreaterEq is Aᵢ·x ≥ bᵢ; normalization appends a −1 surplus column.
	GreaterEq

	// Equal is Aᵢ·x = bᵢ; no auxiliary column is appended.
	Equal
)

// String returns the relation in its usual infix spelling.
func (s Sign) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	default:
		return "="
	}
}

// Bound is the domain of one structural variable.
type Bound int

const (
	// NonNegative is xⱼ ≥ 0 (the standard-form domain).
	NonNegative Bound = iota

	// NonPositive is xⱼ ≤ 0; normalization substitutes xⱼ = −x⁺.
	NonPositive

	// Free is xⱼ ∈ ℝ; normalization splits xⱼ = x⁺ − x⁻.
	Free

	// Zero pins xⱼ = 0; the variable is dropped from the standard form
	// and reported as 0 on recovery.
	Zero
)

// Method selects the solving strategy. It is resolved once at solve entry,
// never re-interpreted per iteration.
type Method int

const (
	// Simplex is the tableau simplex under the Dantzig entering rule,
	// with an automatic Phase 1 when no identity basis is available and an
	// automatic Bland fallback when a repeated basis is detected.
	Simplex Method = iota

	// Bland forces Bland's smallest-index rule from the first pivot.
	// Terminates on every input (no cycling), possibly in more iterations.
	Bland

	// TwoPhase forces the two-phase method: artificial variables are
	// introduced for every row without a natural unit column and Phase 1
	// runs even when it is trivially empty.
	TwoPhase

	// Geometric enumerates constraint-intersection vertices. Only valid for
	// problems with exactly two structural variables; used as an
	// independent cross-check oracle.
	Geometric
)

// String returns the method selector's canonical name.
func (m Method) String() string {
	switch m {
	case Bland:
		return "bland"
	case TwoPhase:
		return "two_phase"
	case Geometric:
		return "geometric"
	default:
		return "simplex"
	}
}

// Rule is the entering-variable selection policy of the pivot engine.
type Rule int

const (
	// RuleDantzig picks the non-basic column with the most negative reduced
	// cost, ties broken by lowest column index. Fast in practice, may cycle
	// on degenerate inputs.
	RuleDantzig Rule = iota

	// RuleBland picks the lowest-indexed column with negative reduced cost.
	// Combined with the lowest-basic-index tie-break of the ratio test this
	// provably prevents cycling.
	RuleBland
)

// Problem is the immutable input to every solver.
//
// Invariants (checked by Validate): A has len(B) rows and len(C) columns in
// every row; Signs has one entry per row; Bounds is either nil (all
// variables non-negative) or has one entry per variable.
type Problem struct {
	Direction Direction
	C         []float64   // objective coefficients, length n
	A         [][]float64 // constraint matrix, m rows × n columns
	B         []float64   // right-hand side, length m
	Signs     []Sign      // one relation per row
	Bounds    []Bound     // per-variable domain; nil means all NonNegative
}

// NumVariables returns n, the number of structural variables.
func (p Problem) NumVariables() int { return len(p.C) }

// NumConstraints returns m, the number of constraint rows.
func (p Problem) NumConstraints() int { return len(p.B) }
