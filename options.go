package ssat

import "github.com/qmo1222/ssatABC/cubenet"

// GeneralizationPolicy produces a blocking clause over R from a model of
// Φ found under random assignment r, per spec §4.5's two selectable
// variants (Open Question #2).
type GeneralizationPolicy func(problem Problem, r []Literal, m Model, h *hittingSetGeneralizer) (Clause, error)

// hittingSetPolicy is the default GeneralizationPolicy.
func hittingSetPolicy(problem Problem, _ []Literal, m Model, h *hittingSetGeneralizer) (Clause, error) {
	return h.Generalize(problem, m)
}

// degeneratePolicy is the fallback GeneralizationPolicy: B = ¬r exactly,
// with no attempt at generalization.
func degeneratePolicy(_ Problem, r []Literal, _ Model, _ *hittingSetGeneralizer) (Clause, error) {
	return degenerateGeneralize(r)
}

// Option configures an Engine at construction time, following the
// functional-options idiom of solver.New/solver.WithInput/solver.WithTracer.
type Option func(e *Engine) error

// WithRange sets the termination threshold: Solve stops once
// 1 - unsatPb - satPb <= Range. The default is 0 (run to exhaustion).
func WithRange(r float64) Option {
	return func(e *Engine) error {
		if r < 0 {
			return ShapeError{Reason: "range must be non-negative"}
		}
		e.rangeBound = r
		return nil
	}
}

// WithBatchLimit bounds how many cubes accumulate in a store before they
// are flushed to the probability sink, per spec §4.6 step 4's batching
// allowance. The default is 1 (flush after every learned cube).
func WithBatchLimit(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return ShapeError{Reason: "batch limit must be at least 1"}
		}
		e.batchLimit = n
		return nil
	}
}

// WithMinimization enables or disables UNSAT-core minimization (fMini);
// the default is enabled.
func WithMinimization(enabled bool) Option {
	return func(e *Engine) error {
		e.minimize = enabled
		e.minimizeSet = true
		return nil
	}
}

// WithHittingSetGeneralization selects the three-phase greedy hitting-set
// generalizer for SAT cubes. This is the default.
func WithHittingSetGeneralization() Option {
	return func(e *Engine) error {
		e.generalize = hittingSetPolicy
		return nil
	}
}

// WithDegenerateGeneralization selects the degenerate generalizer
// (B = ¬r, no generalization attempted) for SAT cubes.
func WithDegenerateGeneralization() Option {
	return func(e *Engine) error {
		e.generalize = degeneratePolicy
		return nil
	}
}

// WithLogger sets the Logger an Engine reports progress through. The
// default is a silent no-op logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return ShapeError{Reason: "logger must not be nil"}
		}
		e.logger = l
		return nil
	}
}

// WithProbabilitySink sets the cubenet.Sink an Engine flushes learned
// cube batches through. The default is a fresh cubenet.IndependentSink.
func WithProbabilitySink(s cubenet.Sink) Option {
	return func(e *Engine) error {
		if s == nil {
			return ShapeError{Reason: "probability sink must not be nil"}
		}
		e.sink = s
		return nil
	}
}

var defaultOptions = []Option{
	func(e *Engine) error {
		if e.generalize == nil {
			e.generalize = hittingSetPolicy
		}
		return nil
	},
	func(e *Engine) error {
		if !e.minimizeSet {
			e.minimize = true
		}
		return nil
	},
	func(e *Engine) error {
		if e.logger == nil {
			e.logger = noopLogger{}
		}
		return nil
	},
	func(e *Engine) error {
		if e.sink == nil {
			e.sink = cubenet.NewIndependentSink()
		}
		return nil
	},
	func(e *Engine) error {
		if e.batchLimit == 0 {
			e.batchLimit = 1
		}
		return nil
	},
}
