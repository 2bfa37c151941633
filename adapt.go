package ssat

import "github.com/qmo1222/ssatABC/solver"

// Model reports the truth value of a literal under some satisfying
// assignment. It is implemented by modelAdapter over a *solver.Model so
// that hitting-set generalization (C6) never handles the solver package's
// literal representation directly.
type Model interface {
	Value(Literal) bool
}

// modelAdapter lets a *solver.Model satisfy Model, translating between
// the ssat package's Literal and the solver package's Lit.
type modelAdapter struct {
	m *solver.Model
}

func (a modelAdapter) Value(l Literal) bool {
	return a.m.Value(toSolverLit(l))
}

func toSolverLit(l Literal) solver.Lit {
	return solver.Lit{V: solver.VarID(l.Var()), Neg: l.Negated()}
}

func toSolverLits(lits []Literal) []solver.Lit {
	out := make([]solver.Lit, len(lits))
	for i, l := range lits {
		out[i] = toSolverLit(l)
	}
	return out
}

func fromSolverLit(l solver.Lit) Literal {
	return NewLiteral(VarID(l.V), l.Neg)
}

func fromSolverLits(lits []solver.Lit) []Literal {
	out := make([]Literal, len(lits))
	for i, l := range lits {
		out[i] = fromSolverLit(l)
	}
	return out
}
