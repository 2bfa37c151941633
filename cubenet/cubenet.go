// Package cubenet implements C8 of the ssat core: folding batches of
// learned UNSAT and SAT cubes into running probability totals.
//
// Package ssat's learned cubes are pairwise disjoint by construction —
// each one strictly shrinks the remaining candidate space of the
// selector solver, so no candidate random assignment is ever covered
// twice (spec §4.7). That lets Sink compute an exact probability as a
// plain sum of per-cube products, with no need for a Boolean-network
// model counter; building one is explicitly out of scope.
//
// The package has no dependency on ssat's types so that the dependency
// graph stays one-directional (ssat imports cubenet, never the reverse).
package cubenet

// Literal is a minimal probability-bearing literal: Prob is the marginal
// probability that the underlying variable is true, independent of all
// other variables, and Neg says whether this occurrence of the variable
// is negated.
type Literal struct {
	Prob float64
	Neg  bool
}

// Cube is a conjunction of Literals — one random-block region.
type Cube []Literal

// Probability returns the probability of the conjunction, assuming the
// independence spec §3 assigns to the random block.
func (c Cube) Probability() float64 {
	p := 1.0
	for _, l := range c {
		if l.Neg {
			p *= 1 - l.Prob
		} else {
			p *= l.Prob
		}
	}
	return p
}

// Sink is the C8 contract: a consumer of batches of learned cubes that
// maintains running UNSAT/SAT probability totals. Implementations must
// be monotone non-decreasing across calls and exact once all cubes for
// a finished run have been flushed, per spec §4.7.
type Sink interface {
	// FlushUnsat folds batch into the running UNSAT probability and
	// returns the updated total.
	FlushUnsat(batch []Cube) float64
	// FlushSat folds batch into the running SAT probability and returns
	// the updated total.
	FlushSat(batch []Cube) float64
}

// IndependentSink is the reference Sink: it sums each cube's independent
// probability directly, relying on the disjointness of cubes presented
// to it by the caller.
type IndependentSink struct {
	unsatPb float64
	satPb   float64
}

// NewIndependentSink returns a Sink with zeroed running totals.
func NewIndependentSink() *IndependentSink {
	return &IndependentSink{}
}

func (s *IndependentSink) FlushUnsat(batch []Cube) float64 {
	for _, c := range batch {
		s.unsatPb += c.Probability()
	}
	return s.unsatPb
}

func (s *IndependentSink) FlushSat(batch []Cube) float64 {
	for _, c := range batch {
		s.satPb += c.Probability()
	}
	return s.satPb
}

// UnsatPb returns the running UNSAT probability total.
func (s *IndependentSink) UnsatPb() float64 {
	return s.unsatPb
}

// SatPb returns the running SAT probability total.
func (s *IndependentSink) SatPb() float64 {
	return s.satPb
}
