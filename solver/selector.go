package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Selector wraps a *gini.Gini whose satisfying assignments enumerate
// not-yet-excluded assignments to a fixed ordered variable set (S2 of the
// ssat core). It starts as the tautology (no clauses) and grows
// monotonically by blocking clauses, per spec §4.2.
type Selector struct {
	g   *gini.Gini
	vm  *VarMap
	ord []VarID
}

// NewSelector returns a Selector whose variable universe includes exactly
// ord, in the given order; ord determines the order in which
// NextCandidate reports literals.
func NewSelector(ord []VarID) *Selector {
	g := gini.New()
	vm := NewVarMap(g)
	for _, v := range ord {
		vm.Alloc(v)
	}
	return &Selector{g: g, vm: vm, ord: append([]VarID(nil), ord...)}
}

// VarMap exposes the Selector's variable translation table, e.g. so
// callers can allocate additional (non-ordered) variables such as clause
// selectors before adding clauses that reference them.
func (s *Selector) VarMap() *VarMap {
	return s.vm
}

// AddClause adds a blocking (or any other) clause to the selector solver.
func (s *Selector) AddClause(lits []Lit) {
	for _, l := range lits {
		s.g.Add(s.vm.Resolve(l))
	}
	s.g.Add(z.LitNull)
}

// NextCandidate returns an unexplored assignment to ord, or ok=false if
// the selector solver is UNSAT (the whole space is covered).
func (s *Selector) NextCandidate() (candidate []Lit, ok bool) {
	if s.g.Solve() != 1 {
		return nil, false
	}
	out := make([]Lit, len(s.ord))
	for i, v := range s.ord {
		l := s.vm.Alloc(v)
		out[i] = Lit{V: v, Neg: !s.g.Value(l)}
	}
	return out, true
}
