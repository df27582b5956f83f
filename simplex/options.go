package simplex

import (
	"errors"

	"github.com/letruongzzio/linprog/lp"
)

// ErrBadMaxIterations indicates that WithMaxIterations was given a value
// below 1, which would forbid every pivot.
var ErrBadMaxIterations = errors.New("simplex: MaxIterations must be positive")

// DefaultMaxIterations is the pivot cap applied when the caller sets none.
// It bounds worst-case work deterministically; there is no wall-clock
// cancellation in the engine.
const DefaultMaxIterations = 1000

// Options configures one Solve call.
//
// Method        – solving strategy (Simplex, Bland, TwoPhase, Geometric).
// MaxIterations – pivot cap shared across both phases. Must be ≥ 1.
// Trace         – diagnostics callback; nil disables tracing. The engine
// holds no global logger: degenerate pivots, Bland fallbacks and dropped
// redundant rows are delivered here and nowhere else.
// RecordPath    – record the basic solution after every Phase-2 pivot.
// Snapshots     – record a tableau copy after every pivot (tabular tracing).
type Options struct {
	Method        lp.Method
	MaxIterations int
	Trace         lp.Tracer
	RecordPath    bool
	Snapshots     bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMethod selects the solving strategy. Default is lp.Simplex.
func WithMethod(m lp.Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithMaxIterations caps the number of pivots across both phases.
// Must be positive; values below 1 panic with ErrBadMaxIterations
// (invalid configuration, signaled early).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTrace installs a diagnostics callback receiving lp.Event values.
func WithTrace(t lp.Tracer) Option {
	return func(o *Options) {
		o.Trace = t
	}
}

// WithPath enables recording of the vertex path traversed in Phase 2.
func WithPath() Option {
	return func(o *Options) {
		o.RecordPath = true
	}
}

// WithSnapshots enables per-pivot tableau snapshots on the Solution.
func WithSnapshots() Option {
	return func(o *Options) {
		o.Snapshots = true
	}
}

// DefaultOptions returns the defaults used by Solve before options apply:
// Method lp.Simplex, MaxIterations DefaultMaxIterations, no trace, no path,
// no snapshots.
func DefaultOptions() Options {
	return Options{
		Method:        lp.Simplex,
		MaxIterations: DefaultMaxIterations,
	}
}
