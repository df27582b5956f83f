// Package geometry solves two-variable linear programs by brute force:
// enumerate every intersection of constraint lines, keep the feasible ones,
// and evaluate the objective at each. It shares no state with the tableau
// path, which makes it an independent correctness oracle for small
// problems: on any 2-D input, simplex.Solve and geometry.Solve must agree
// on the optimal value within tolerance.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/letruongzzio/linprog/lp"
)

// line is one boundary a1·x + a2·y  (≤ | ≥ | =)  b. Constraint rows and
// variable-domain boundaries are both represented this way.
type line struct {
	a1, a2, b float64
	sign      lp.Sign
}

// satisfied reports whether (x, y) respects the line's relation within
// tolerance.
func (l line) satisfied(x, y float64) bool {
	v := l.a1*x + l.a2*y
	switch l.sign {
	case lp.LessEq:
		return v <= l.b+lp.Tol
	case lp.GreaterEq:
		return v >= l.b-lp.Tol
	default:
		return math.Abs(v-l.b) <= lp.Tol
	}
}

// Solve solves a two-variable problem by vertex enumeration:
//
//  1. intersect every pair of boundary lines (constraint rows plus the
//     axis lines contributed by variable domains), skipping parallel pairs;
//  2. keep intersection points satisfying every constraint within lp.Tol:
//     the candidate vertices of the feasible region;
//  3. if the region admits a feasible recession direction that strictly
//     improves the objective, report StatusUnbounded;
//  4. otherwise evaluate the objective at every feasible vertex and pick
//     the extremum for the problem's direction, first found winning ties;
//  5. with no feasible vertex at all, probe sample points along each
//     boundary line: a feasible probe in a vertex-free region resolves the
//     solve at the best probed point, no feasible probe means
//     StatusInfeasible.
//
// Errors: wrapped lp.ErrMalformedProblem for inconsistent dimensions and
// wrapped lp.ErrNotTwoDimensional for n ≠ 2. Complexity: O(k³) for k
// boundary lines (k² intersections, each checked against k constraints).
func Solve(p lp.Problem, opts ...Option) (lp.Solution, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if err := p.Validate(); err != nil {
		return lp.Solution{}, fmt.Errorf("geometry: %w", err)
	}
	if p.NumVariables() != 2 {
		return lp.Solution{}, fmt.Errorf("geometry: %w (got %d)", lp.ErrNotTwoDimensional, p.NumVariables())
	}

	lines := boundaries(p)
	vertices := Vertices(p)

	feasible := vertices[:0:0]
	for _, v := range vertices {
		if v.Feasible {
			feasible = append(feasible, v)
		}
	}

	if len(feasible) == 0 {
		probe, ok := probeFeasible(lines)
		if !ok {
			return lp.Solution{Status: lp.StatusInfeasible}, nil
		}
		// Vertex-free but non-empty region: the optimum, when one exists,
		// lies on a boundary line; resolve at the best probed point after
		// the recession check below has ruled out unboundedness.
		for i := range probe {
			probe[i].Objective = p.C[0]*probe[i].X + p.C[1]*probe[i].Y
		}
		feasible = probe
	}

	if improvingRay(p, lines) {
		return lp.Solution{Status: lp.StatusUnbounded}, nil
	}

	best := feasible[0]
	for _, v := range feasible[1:] {
		if better(p.Direction, v.Objective, best.Objective) {
			best = v
		}
	}

	sol := lp.Solution{
		Status:    lp.StatusOptimal,
		X:         []float64{best.X, best.Y},
		Objective: best.Objective,
	}
	if o.RecordPath {
		for _, v := range feasible {
			sol.Path = append(sol.Path, lp.BasicSolution{
				X:         []float64{v.X, v.Y},
				Objective: v.Objective,
			})
		}
	}

	return sol, nil
}

// Vertices enumerates every pairwise intersection of the problem's
// boundary lines, deduplicated, with feasibility flags and objective
// values. Exposed for inspection and plotting front ends; Solve consumes
// the feasible subset.
func Vertices(p lp.Problem) []Vertex {
	lines := boundaries(p)

	var out []Vertex
	seen := make(map[[2]int64]struct{})
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			x, y, ok := intersect(lines[i], lines[j])
			if !ok {
				continue
			}
			key := [2]int64{int64(math.Round(x / 1e-8)), int64(math.Round(y / 1e-8))}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Vertex{
				X:         x,
				Y:         y,
				Feasible:  feasiblePoint(lines, x, y),
				Objective: p.C[0]*x + p.C[1]*y,
			})
		}
	}

	return out
}

// boundaries collects the constraint rows and the axis lines contributed
// by variable domains (x ≥ 0 for NonNegative, x ≤ 0 for NonPositive,
// x = 0 for Zero; Free adds nothing).
func boundaries(p lp.Problem) []line {
	lines := make([]line, 0, len(p.A)+2)
	for i, row := range p.A {
		lines = append(lines, line{a1: row[0], a2: row[1], b: p.B[i], sign: p.Signs[i]})
	}
	for j := 0; j < 2; j++ {
		var bound lp.Bound
		if p.Bounds != nil {
			bound = p.Bounds[j]
		}
		var sign lp.Sign
		switch bound {
		case lp.NonNegative:
			sign = lp.GreaterEq
		case lp.NonPositive:
			sign = lp.LessEq
		case lp.Zero:
			sign = lp.Equal
		case lp.Free:
			continue
		}
		l := line{b: 0, sign: sign}
		if j == 0 {
			l.a1 = 1
		} else {
			l.a2 = 1
		}
		lines = append(lines, l)
	}

	return lines
}

// intersect solves the 2×2 system of two boundary lines. Parallel or
// coincident pairs (singular system) report ok=false.
func intersect(l1, l2 line) (x, y float64, ok bool) {
	a := mat.NewDense(2, 2, []float64{l1.a1, l1.a2, l2.a1, l2.a2})
	b := mat.NewVecDense(2, []float64{l1.b, l2.b})

	var v mat.VecDense
	if err := v.SolveVec(a, b); err != nil {
		return 0, 0, false
	}

	return v.AtVec(0), v.AtVec(1), true
}

// feasiblePoint reports whether (x, y) satisfies every boundary line.
func feasiblePoint(lines []line, x, y float64) bool {
	for _, l := range lines {
		if !l.satisfied(x, y) {
			return false
		}
	}

	return true
}

// improvingRay reports whether some feasible recession direction strictly
// improves the objective, the unboundedness certificate of the geometric
// method. Candidate directions are the directions along each boundary line
// and the axis directions; in 2-D every extreme ray of the recession cone
// lies along one of these (a full-plane cone is covered by the axes).
func improvingRay(p lp.Problem, lines []line) bool {
	var candidates [][2]float64
	for _, l := range lines {
		candidates = append(candidates, [2]float64{l.a2, -l.a1}, [2]float64{-l.a2, l.a1})
	}
	candidates = append(candidates,
		[2]float64{1, 0}, [2]float64{-1, 0}, [2]float64{0, 1}, [2]float64{0, -1})

	for _, d := range candidates {
		n := math.Hypot(d[0], d[1])
		if n <= lp.Tol {
			continue
		}
		dx, dy := d[0]/n, d[1]/n
		if !recessionDirection(lines, dx, dy) {
			continue
		}
		gain := p.C[0]*dx + p.C[1]*dy
		if (p.Direction == lp.Minimize && gain < -lp.Tol) ||
			(p.Direction == lp.Maximize && gain > lp.Tol) {
			return true
		}
	}

	return false
}

// recessionDirection reports whether moving along (dx, dy) can never leave
// the feasible region: ≤ rows need a non-positive rate of change, ≥ rows a
// non-negative one, = rows a zero one.
func recessionDirection(lines []line, dx, dy float64) bool {
	for _, l := range lines {
		rate := l.a1*dx + l.a2*dy
		switch l.sign {
		case lp.LessEq:
			if rate > lp.Tol {
				return false
			}
		case lp.GreaterEq:
			if rate < -lp.Tol {
				return false
			}
		default:
			if math.Abs(rate) > lp.Tol {
				return false
			}
		}
	}

	return true
}

// probeSteps are the parameters sampled along each boundary line when the
// region has no vertex at all (fewer than two independent lines).
var probeSteps = []float64{0, 1, -1, 10, -10, 100, -100, 1000, -1000}

// probeFeasible samples the origin and points along every boundary line,
// returning the feasible samples as pseudo-vertices. Used only when vertex
// enumeration found no feasible corner, to distinguish an empty region
// from a vertex-free one.
func probeFeasible(lines []line) ([]Vertex, bool) {
	var out []Vertex
	add := func(x, y float64) {
		if feasiblePoint(lines, x, y) {
			out = append(out, Vertex{X: x, Y: y, Feasible: true})
		}
	}

	add(0, 0)
	for _, l := range lines {
		// A base point on the line and the direction along it.
		var bx, by float64
		if math.Abs(l.a1) >= math.Abs(l.a2) {
			if math.Abs(l.a1) <= lp.Tol {
				continue
			}
			bx, by = l.b/l.a1, 0
		} else {
			bx, by = 0, l.b/l.a2
		}
		n := math.Hypot(l.a1, l.a2)
		dx, dy := l.a2/n, -l.a1/n
		for _, t := range probeSteps {
			add(bx+t*dx, by+t*dy)
		}
	}

	return out, len(out) > 0
}

// better reports whether objective value a beats b for the direction.
func better(d lp.Direction, a, b float64) bool {
	if d == lp.Maximize {
		return a > b+lp.Tol
	}

	return a < b-lp.Tol
}
