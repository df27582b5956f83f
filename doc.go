// Package linprog solves linear programming problems exactly, with several
// interchangeable strategies and a shared problem model.
//
// What's inside:
//
//	lp/          — Problem model, normalizer to standard form, dense simplex
//	               tableau and pivot engine
//	simplex/     — unified dispatcher and Phase 1 / Phase 2 manager
//	               (Dantzig rule, Bland's rule, explicit two-phase)
//	geometry/    — 2-D vertex-enumeration solver, an independent oracle for
//	               cross-checking the tableau path on small problems
//	probfile/    — YAML problem-definition loader (the string boundary)
//	mps/         — MPS file reader over the GLPK bindings (parser only)
//	cmd/linprog/ — CLI front end; owns all printing
//
// Quick example:
//
//	p := lp.Problem{
//	    Direction: lp.Minimize,
//	    C:         []float64{-3, -5},
//	    A:         [][]float64{{1, 0}, {0, 2}, {3, 2}},
//	    B:         []float64{4, 12, 18},
//	    Signs:     []lp.Sign{lp.LessEq, lp.LessEq, lp.LessEq},
//	}
//	sol, err := simplex.Solve(p)
//	// sol.Status == lp.StatusOptimal, sol.X == [2 6], sol.Objective == -36
//
// Guarantees:
//
//   - Deterministic: fixed tie-breaking in both pivot rules; no randomness.
//   - Total: infeasibility, unboundedness and the iteration cap are Status
//     values on the Solution, never panics or process exits.
//   - Anti-cycling: Bland's rule on request, and an automatic permanent
//     fallback to it when a repeated basis is detected under the standard
//     rule.
//   - Single-threaded by construction: each solve owns its tableau; nothing
//     mutable crosses calls.
package linprog
