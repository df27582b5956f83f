// Package simplex - unified dispatcher and phase manager for the
// linear-programming solvers.
//
// This file provides the canonical entry point:
//
//   - Solve: validate and normalize the problem, route to the requested
//     method (tableau simplex under the Dantzig or Bland rule, explicit
//     two-phase, or the 2-D geometric oracle), drive the pivot engine
//     through Phase 1 / Phase 2, and assemble the Solution.
//
// Design principles:
//   - Deterministic: fixed tie-breaking everywhere; no randomness.
//   - Strict sentinels: malformed input surfaces as wrapped
//     lp.ErrMalformedProblem; algorithmic outcomes are Status values,
//     never errors.
//   - Single-threaded by construction: each Tableau is owned by the one
//     Solve call that created it; no state crosses invocations.
package simplex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/letruongzzio/linprog/geometry"
	"github.com/letruongzzio/linprog/lp"
)

// Solve solves a linear program and reports the outcome as an lp.Solution.
//
// The state machine is Normalizing → Phase 1 (only when artificial
// variables were introduced) → Phase 2 → Terminated:
//
//   - Phase 1 minimizes the artificial-variable sum; a positive optimum
//     (beyond lp.Tol) proves infeasibility. Otherwise artificials are
//     dropped (degenerate swap-out or redundant-row deletion, see
//     lp.Tableau.DropArtificials) and the true objective row is installed.
//   - Phase 2 runs the pivot engine to optimality or unboundedness.
//   - The pivot cap is shared across phases; exceeding it terminates with
//     StatusIterationLimit instead of looping forever.
//   - Under the Dantzig rule a repeated basis (cycling signature) switches
//     the solve permanently to Bland's rule and emits EventBlandFallback;
//     Method lp.Bland forces Bland's rule from the first pivot.
//
// The reported point and objective are in the original problem space: free
// variable splits are undone and a maximization objective gets its sign
// back. Errors are returned only for malformed input or a non-2-D problem
// handed to the geometric method; every algorithmic outcome is a Status.
//
// Complexity: O(iterations · m · cols) time, O(m · cols) memory.
func Solve(p lp.Problem, opts ...Option) (lp.Solution, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if o.Method == lp.Geometric {
		gopts := []geometry.Option{}
		if o.RecordPath {
			gopts = append(gopts, geometry.WithPath())
		}

		return geometry.Solve(p, gopts...)
	}

	std, err := lp.Normalize(p)
	if err != nil {
		return lp.Solution{}, fmt.Errorf("simplex: %w", err)
	}

	hint := lp.AutoBasis
	if o.Method == lp.TwoPhase {
		hint = lp.ForceArtificial
	}
	rule := lp.RuleDantzig
	if o.Method == lp.Bland {
		rule = lp.RuleBland
	}

	run := &runner{
		t:    lp.NewTableau(std, hint),
		std:  std,
		opts: o,
		rule: rule,
		seen: make(map[string]struct{}),
	}

	return run.solve(), nil
}

// runner carries the mutable state of one solve: the tableau, the active
// rule (may flip to Bland mid-solve), the shared iteration counter, the
// basis signatures seen in the current phase, and the accumulating result.
type runner struct {
	t    *lp.Tableau
	std  *lp.Standard
	opts Options
	rule lp.Rule
	iter int
	seen map[string]struct{}
	sol  lp.Solution
}

// solve drives the phase state machine to termination.
func (run *runner) solve() lp.Solution {
	if run.t.NeedsPhase1() {
		status, done := run.phase(false)
		run.sol.Phase1Iterations = run.iter
		if done {
			run.finish(status)

			return run.sol
		}
		if run.t.Objective() > lp.Tol {
			run.finish(lp.StatusInfeasible)

			return run.sol
		}
		run.t.DropArtificials(run.opts.Trace, run.iter)
		run.t.InstallTrueObjective()
		run.seen = make(map[string]struct{})
	}

	status, _ := run.phase(true)
	run.finish(status)

	return run.sol
}

// phase runs the pivot engine until the installed objective is optimal.
// It returns the terminal status and whether that status already ends the
// whole solve (true for unboundedness and the iteration cap; false for a
// Phase-1 optimum, which the caller inspects for feasibility).
func (run *runner) phase(recordable bool) (lp.Status, bool) {
	record := recordable && run.opts.RecordPath
	if record {
		run.recordVertex()
	}
	run.noteBasis()

	for {
		if run.iter >= run.opts.MaxIterations {
			return lp.StatusIterationLimit, true
		}

		step := run.t.Step(run.rule, run.opts.Trace, run.iter)
		switch step.Result {
		case lp.OptimalReached:
			return lp.StatusOptimal, false
		case lp.UnboundedAt:
			return lp.StatusUnbounded, true
		}

		run.iter++
		if record {
			run.recordVertex()
		}
		if run.opts.Snapshots {
			run.sol.Snapshots = append(run.sol.Snapshots, run.t.Snapshot())
		}
		run.noteBasis()
	}
}

// finish stamps the terminal status and, on optimality, recovers the
// original-space point and objective value.
func (run *runner) finish(status lp.Status) {
	run.sol.Status = status
	run.sol.Iterations = run.iter
	if status != lp.StatusOptimal {
		return
	}
	run.sol.X = run.std.Recover(run.t.BasicSolution())
	obj := run.t.Objective()
	if run.std.Negated {
		obj = -obj
	}
	run.sol.Objective = obj
}

// recordVertex appends the current basic solution to the path, in original
// space and with the objective in the problem's own direction.
func (run *runner) recordVertex() {
	x := run.t.BasicSolution()
	obj := run.t.TrueObjectiveAt(x)
	if run.std.Negated {
		obj = -obj
	}
	run.sol.Path = append(run.sol.Path, lp.BasicSolution{
		X:         run.std.Recover(x),
		Objective: obj,
	})
}

// noteBasis records the current basis signature. Seeing the same signature
// twice under the Dantzig rule is the cycling indicator: the solve switches
// permanently to Bland's rule, whose termination is guaranteed.
func (run *runner) noteBasis() {
	if run.rule != lp.RuleDantzig {
		return
	}
	sig := basisSignature(run.t.Basis)
	if _, ok := run.seen[sig]; ok {
		run.rule = lp.RuleBland
		run.opts.Trace.Emit(lp.Event{
			Kind:      lp.EventBlandFallback,
			Iteration: run.iter,
			Detail:    "repeated basis detected; switching to Bland's rule",
		})

		return
	}
	run.seen[sig] = struct{}{}
}

// basisSignature encodes a basis as an order-independent string key.
func basisSignature(basis []int) string {
	cols := make([]int, len(basis))
	copy(cols, basis)
	sort.Ints(cols)

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}
