// Package lp provides the building blocks of the linear-programming engine:
// the problem model, the normalizer to standard form, and the dense simplex
// tableau with its pivot engine.
//
// Overview:
//
//   - Problem is the immutable general-form input: objective direction and
//     coefficients, constraint matrix with per-row relations (≤, ≥, =), and
//     per-variable domains (non-negative, non-positive, free, pinned zero).
//   - Normalize rewrites a Problem as an equivalent minimization over
//     equalities with all variables non-negative (Standard), appending one
//     slack/surplus column per inequality row, splitting free variables and
//     recording everything needed to map a standard-space point back.
//   - NewTableau builds the (m+1)×(cols+1) simplex tableau from a Standard,
//     reusing natural unit columns as the initial basis or introducing
//     artificial variables for Phase 1.
//   - Step performs one pivot under the Dantzig or Bland entering rule,
//     mutating the tableau in place on its contiguous row-major storage.
//
// The orchestration lives elsewhere: package simplex drives phases and
// rule fallback, package geometry is the 2-D vertex-enumeration oracle.
//
// Performance and complexity:
//
//   - Normalize: O(m·cols) time and memory, once per solve.
//   - NewTableau: O(m·cols), once per solve.
//   - Step: O(m·cols) per pivot, allocation-free on the hot path.
//
// Error handling (sentinel errors):
//
//   - ErrMalformedProblem:
//     Problem dimensions are inconsistent; detected defensively at solve
//     entry, wrapped with detail, testable with errors.Is.
//   - ErrNotTwoDimensional:
//     A 2-D-only method was requested for a problem that is not 2-D.
//
// Algorithmic outcomes (infeasible, unbounded, iteration cap) are not
// errors: they are Status values on Solution.
package lp
