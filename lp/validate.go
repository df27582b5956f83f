package lp

import "fmt"

// Validate performs the defensive dimension checks described for the solve
// boundary. Primary validation is the configuration layer's responsibility;
// a failure here means the caller handed over an inconsistent Problem.
//
// Checks, in order:
//  1. the objective is non-empty;
//  2. A has exactly len(B) rows;
//  3. every row of A has exactly len(C) columns;
//  4. Signs has one entry per row;
//  5. Bounds, when present, has one entry per variable.
//
// All failures wrap ErrMalformedProblem so callers can test with errors.Is.
// Complexity: O(m).
func (p Problem) Validate() error {
	if len(p.C) == 0 {
		return fmt.Errorf("%w: empty objective", ErrMalformedProblem)
	}
	if len(p.A) == 0 {
		return fmt.Errorf("%w: no constraint rows", ErrMalformedProblem)
	}
	if len(p.A) != len(p.B) {
		return fmt.Errorf("%w: %d constraint rows, %d rhs entries", ErrMalformedProblem, len(p.A), len(p.B))
	}
	for i, row := range p.A {
		if len(row) != len(p.C) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedProblem, i, len(row), len(p.C))
		}
	}
	if len(p.Signs) != len(p.A) {
		return fmt.Errorf("%w: %d signs for %d rows", ErrMalformedProblem, len(p.Signs), len(p.A))
	}
	if p.Bounds != nil && len(p.Bounds) != len(p.C) {
		return fmt.Errorf("%w: %d bounds for %d variables", ErrMalformedProblem, len(p.Bounds), len(p.C))
	}

	return nil
}

// boundOf returns the domain of variable j, treating a nil Bounds slice as
// all-NonNegative.
func (p Problem) boundOf(j int) Bound {
	if p.Bounds == nil {
		return NonNegative
	}

	return p.Bounds[j]
}
