package ssat

import "github.com/qmo1222/ssatABC/solver"

// rawUnsatCore wraps a body solver's conflict literals into a blocking
// clause with no further minimization, per spec §4.4's raw mode.
func rawUnsatCore(conflict []Literal) (Clause, error) {
	return NewClause(conflict...)
}

// minimizeUnsatCore repeatedly tries dropping one literal at a time from
// conflict and re-testing body under the reduced assumption set, keeping
// the drop whenever the formula remains UNSAT. This is the fMini branch
// of spec §4.4, grounded on ssatAllSolve.cc's iterative drop-and-retest
// core minimization.
//
// conflict must be the Conflict slice returned by the Outcome of the
// Test call being minimized; body must still hold that scope, since
// minimizeUnsatCore issues further Test calls on it.
func minimizeUnsatCore(body *solver.Body, conflict []Literal) (Clause, error) {
	kept := append([]Literal(nil), conflict...)
	for i := 0; i < len(kept); {
		trial := make([]Literal, 0, len(kept)-1)
		trial = append(trial, kept[:i]...)
		trial = append(trial, kept[i+1:]...)

		assumption := make([]Literal, len(trial))
		for j, lit := range trial {
			assumption[j] = lit.Negate()
		}
		out := body.Test(toSolverLits(assumption))
		if !out.Sat {
			kept = trial
			continue // a literal slid into position i; re-examine it
		}
		i++
	}
	return NewClause(kept...)
}
