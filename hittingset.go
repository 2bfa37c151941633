package ssat

// hittingSetGeneralizer implements the three-phase greedy hitting-set
// generalizer of spec §4.5 (C6), grounded on the algorithm's prose
// description there — ssatAllSolve.cc's own miniHitSet only exercises the
// degenerate fallback, so the three-phase walk below is a from-scratch,
// spec-faithful reimplementation.
//
// It carries reusable scratch buffers (picked, minterm) across calls, per
// spec §5/§9's guidance to avoid reallocating per-iteration state in the
// driver's hot loop.
type hittingSetGeneralizer struct {
	picked  map[VarID]bool
	minterm []Literal
}

func newHittingSetGeneralizer() *hittingSetGeneralizer {
	return &hittingSetGeneralizer{picked: make(map[VarID]bool)}
}

// Generalize derives a blocking clause B over R from a model m of Φ
// found under some random assignment, such that ¬B is a subcube of
// R-space every member of which still extends to a full satisfying
// assignment of Φ (using the same existential witness structure).
func (h *hittingSetGeneralizer) Generalize(problem Problem, m Model) (Clause, error) {
	for k := range h.picked {
		delete(h.picked, k)
	}
	h.minterm = h.minterm[:0]
	var b []Literal

	clauses := problem.Clauses

	// Phase 1: clauses satisfied by exactly one true literal force that
	// variable to be picked; if it is a random variable, its negated
	// literal joins B directly.
	for _, c := range clauses {
		if h.anyPicked(c) {
			continue
		}
		t := trueLiterals(c, m)
		if len(t) != 1 {
			continue
		}
		lit := t[0]
		h.picked[lit.Var()] = true
		if tag, _ := problem.Prefix.TagOf(lit.Var()); tag == Random {
			b = append(b, lit.Negate())
		}
	}

	// Phase 2: remaining clauses are covered by picking one existential
	// witness if any true existential literal is available, else every
	// true random literal is picked and collected into the minterm.
	for _, c := range clauses {
		if h.anyPicked(c) {
			continue
		}
		t := trueLiterals(c, m)
		var exist, random []Literal
		for _, lit := range t {
			switch tag, _ := problem.Prefix.TagOf(lit.Var()); tag {
			case Exist:
				exist = append(exist, lit)
			case Random:
				random = append(random, lit)
			}
		}
		if len(exist) > 0 {
			h.picked[exist[0].Var()] = true
			continue
		}
		for _, lit := range random {
			h.picked[lit.Var()] = true
			h.minterm = append(h.minterm, lit)
		}
	}

	// Phase 3: try to drop each minterm literal's variable from picked;
	// keep the drop if every clause is still covered by some true
	// literal whose variable remains picked, else restore it and commit
	// its negation to B.
	for _, lit := range h.minterm {
		delete(h.picked, lit.Var())
		if h.allCovered(clauses, m) {
			continue
		}
		h.picked[lit.Var()] = true
		b = append(b, lit.Negate())
	}

	if len(b) > len(problem.Prefix.R) {
		c, _ := NewClause(b...)
		return nil, CapacityError{Clause: c, RSize: len(problem.Prefix.R)}
	}
	return NewClause(b...)
}

// anyPicked reports whether any literal of c names an already-picked
// variable, regardless of that literal's truth value.
func (h *hittingSetGeneralizer) anyPicked(c Clause) bool {
	for _, lit := range c {
		if h.picked[lit.Var()] {
			return true
		}
	}
	return false
}

// allCovered reports whether every clause has some literal that is both
// true under m and names a currently-picked variable.
func (h *hittingSetGeneralizer) allCovered(clauses []Clause, m Model) bool {
	for _, c := range clauses {
		covered := false
		for _, lit := range c {
			if h.picked[lit.Var()] && m.Value(lit) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// trueLiterals returns the literals of c that are true under m.
func trueLiterals(c Clause, m Model) []Literal {
	var out []Literal
	for _, lit := range c {
		if m.Value(lit) {
			out = append(out, lit)
		}
	}
	return out
}

// degenerateGeneralize is the fallback generalizer of spec §4.5: it
// blocks nothing more than the exact random assignment r that was
// tested, mirroring ssatAllSolve.cc's miniHitSet degenerate path (B =
// ¬r) when no generalization is attempted.
func degenerateGeneralize(r []Literal) (Clause, error) {
	b := make([]Literal, len(r))
	for i, lit := range r {
		b[i] = lit.Negate()
	}
	return NewClause(b...)
}
