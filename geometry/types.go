package geometry

// Vertex is one candidate corner of the feasible region: the intersection
// of two constraint lines, its feasibility under every constraint, and the
// objective value there (in the problem's own direction).
type Vertex struct {
	X, Y      float64
	Feasible  bool
	Objective float64
}

// Options configures Solve.
//
// RecordPath – when set, the Solution carries the feasible vertices that
// were evaluated, in evaluation order, as its Path.
type Options struct {
	RecordPath bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithPath records the evaluated feasible vertices on the Solution.
func WithPath() Option {
	return func(o *Options) {
		o.RecordPath = true
	}
}

// DefaultOptions returns the defaults used by Solve: no path recording.
func DefaultOptions() Options {
	return Options{}
}
