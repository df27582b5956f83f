package lp

// Status is the terminal outcome of a solve. Every outcome, including
// infeasibility and the iteration cap, is reported as a value here; the
// engine never turns an algorithmic outcome into a runtime fault.
type Status int

const (
	// StatusOptimal: an optimal basic feasible solution was found.
	StatusOptimal Status = iota

	// StatusUnbounded: an improving direction with no limiting constraint
	// exists; the objective decreases (resp. increases) without bound.
	StatusUnbounded

	// StatusInfeasible: Phase 1 proved the feasible region empty, or the
	// geometric method found no feasible vertex.
	StatusInfeasible

	// StatusIterationLimit: the configured pivot cap was exceeded before
	// termination. Recoverable: rerun with a higher cap or Bland's rule.
	StatusIterationLimit
)

// String returns the status in its canonical spelling.
func (s Status) String() string {
	switch s {
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasible:
		return "infeasible"
	case StatusIterationLimit:
		return "iteration_limit_exceeded"
	default:
		return "optimal"
	}
}

// BasicSolution is one vertex on the path traversed by the engine: the
// original-space point after a pivot and its objective value in the
// problem's own direction.
type BasicSolution struct {
	X         []float64
	Objective float64
}

// Snapshot is a copy of the tableau taken after one pivot, for tabular
// tracing. Data is row-major with Cols entries per row; row 0 is the
// reduced-cost row and the last column is the right-hand side.
type Snapshot struct {
	Rows, Cols int
	Data       []float64
}

// Solution is the immutable result of one solve call.
type Solution struct {
	Status Status

	// X is the optimal point in the original variable space;
	// nil unless Status is StatusOptimal.
	X []float64

	// Objective is the optimal value in the problem's own direction;
	// meaningful only when Status is StatusOptimal.
	Objective float64

	// Path is the ordered sequence of basic solutions traversed,
	// recorded only when requested.
	Path []BasicSolution

	// Iterations counts every pivot performed, across both phases.
	Iterations int

	// Phase1Iterations counts the pivots spent finding a feasible basis;
	// zero when an identity basis was available immediately.
	Phase1Iterations int

	// Snapshots holds per-pivot tableau copies when tabular tracing was
	// requested; nil otherwise.
	Snapshots []Snapshot
}

// EventKind classifies a diagnostic event emitted during a solve.
type EventKind int

const (
	// EventDegeneratePivot: a pivot with zero ratio occurred. Advisory,
	// non-fatal; the objective value did not change on this step.
	EventDegeneratePivot EventKind = iota

	// EventBlandFallback: a repeated basis was detected under the Dantzig
	// rule and the solve switched permanently to Bland's rule.
	EventBlandFallback

	// EventRowDropped: a linearly redundant row was removed while clearing
	// artificial variables at the end of Phase 1.
	EventRowDropped
)

// String returns the event kind's canonical name.
func (k EventKind) String() string {
	switch k {
	case EventBlandFallback:
		return "bland_fallback"
	case EventRowDropped:
		return "redundant_row_dropped"
	default:
		return "degenerate_pivot"
	}
}

// Event is one diagnostic emitted through the trace callback. The engine
// holds no global logger; callers that want diagnostics pass a callback.
type Event struct {
	Kind      EventKind
	Iteration int
	Detail    string
}

// Tracer receives diagnostic events during a solve. A nil Tracer is valid
// and disables tracing.
type Tracer func(Event)

// Emit invokes the tracer when one is installed; safe on a nil Tracer.
func (t Tracer) Emit(e Event) {
	if t != nil {
		t(e)
	}
}
