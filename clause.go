package ssat

import "github.com/pkg/errors"

// Clause is an ordered disjunction of literals. Duplicate literals and
// tautologies (v and its negation both present) are rejected at
// construction time by NewClause.
type Clause []Literal

// DuplicateLiteral is returned when a clause contains the same literal
// twice.
type DuplicateLiteral Literal

func (e DuplicateLiteral) Error() string {
	return "duplicate literal " + Literal(e).String() + " in clause"
}

// Tautology is returned when a clause contains both polarities of the
// same variable.
type Tautology VarID

func (e Tautology) Error() string {
	return "tautological clause over " + VarID(e).String()
}

// NewClause validates lits and returns a Clause, or an error if lits
// contains a duplicate literal or a tautology.
func NewClause(lits ...Literal) (Clause, error) {
	seen := make(map[VarID]bool, len(lits))
	for _, l := range lits {
		if l.IsZero() {
			return nil, errors.New("clause contains the zero literal")
		}
		if neg, ok := seen[l.v]; ok {
			if neg == l.neg {
				return nil, DuplicateLiteral(l)
			}
			return nil, Tautology(l.v)
		}
		seen[l.v] = l.neg
	}
	out := make(Clause, len(lits))
	copy(out, lits)
	return out, nil
}
