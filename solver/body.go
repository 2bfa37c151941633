package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Model exposes the value of any literal in a satisfying assignment found
// by the last Body.Test call. It is only meaningful until the next call to
// Test on the same Body.
type Model struct {
	b *Body
}

// Value returns the truth value of l in this model.
func (m *Model) Value(l Lit) bool {
	return m.b.g.Value(m.b.vm.Resolve(l))
}

// Outcome is the tagged result of testing an assumption set against a
// Body: exactly one of Model or Conflict is populated, per Design Note 9's
// preference for explicit sum types over polymorphism.
type Outcome struct {
	Sat      bool
	Model    *Model // non-nil iff Sat
	Conflict []Lit  // non-nil iff !Sat; a subset of the negated assumptions
}

// Body wraps a *gini.Gini loaded with a fixed CNF formula (S1 of the ssat
// core). Clauses are added once, before any call to Test, and are never
// removed, per spec §3's Lifecycle paragraph ("S1 is initialized with
// (selector-augmented) Φ and never has original clauses removed").
type Body struct {
	g      *gini.Gini
	vm     *VarMap
	tested bool
}

// NewBody returns an empty Body ready to receive clauses via AddClause.
func NewBody() *Body {
	g := gini.New()
	return &Body{g: g, vm: NewVarMap(g)}
}

// VarMap exposes the Body's variable translation table so callers can
// allocate variables that appear in no clause (e.g. to pre-register R and
// E before loading clauses, so iteration order is stable).
func (b *Body) VarMap() *VarMap {
	return b.vm
}

// AddClause loads a single CNF clause unconditionally.
func (b *Body) AddClause(lits []Lit) {
	for _, l := range lits {
		b.g.Add(b.vm.Resolve(l))
	}
	b.g.Add(z.LitNull)
}

// AddClauseWithSelector loads lits as (sel ∨ lits): asserting ¬sel
// activates the clause. This is the ClauseSelector literal encoding of
// spec §3.
func (b *Body) AddClauseWithSelector(lits []Lit, sel Lit) {
	b.g.Add(b.vm.Resolve(sel))
	for _, l := range lits {
		b.g.Add(b.vm.Resolve(l))
	}
	b.g.Add(z.LitNull)
}

// Test checks satisfiability of the loaded formula under assumption,
// returning a full model on SAT or a conflict (blocking) clause on UNSAT.
//
// Test manages a single open test scope: calling Test again discards the
// previous scope (and invalidates any Model obtained from it) before
// opening a new one. This mirrors gini's Testable semantics and the
// Test/Untest scoping used throughout operator-lifecycle-manager's
// solver.search and solver.solve.
func (b *Body) Test(assumption []Lit) Outcome {
	if b.tested {
		b.g.Untest()
	}
	ms := make([]z.Lit, len(assumption))
	for i, l := range assumption {
		ms[i] = b.vm.Resolve(l)
	}
	b.g.Assume(ms...)
	res, _ := b.g.Test(nil)
	b.tested = true
	if res == 0 {
		res = b.g.Solve()
	}
	if res >= 1 {
		return Outcome{Sat: true, Model: &Model{b: b}}
	}
	return Outcome{Sat: false, Conflict: b.conflict()}
}

// conflict reconstructs the blocking clause implied by the failed
// assumptions of the last Test call: for each failed assumption literal a,
// the blocking clause carries ¬a, since a conjunction of assumptions
// failing under Φ means Φ implies the disjunction of their negations.
func (b *Body) conflict() []Lit {
	why := b.g.Why(nil)
	out := make([]Lit, 0, len(why))
	for _, a := range why {
		v, ok := b.vm.VarOf(a)
		if !ok {
			continue
		}
		out = append(out, Lit{V: v, Neg: a.IsPos()})
	}
	return out
}
