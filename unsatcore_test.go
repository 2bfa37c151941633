package ssat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmo1222/ssatABC/solver"
)

func TestRawUnsatCoreWrapsConflictVerbatim(t *testing.T) {
	c, err := rawUnsatCore([]Literal{lit(1, false), lit(2, true)})
	require.NoError(t, err)
	assert.Len(t, c, 2)
}

func TestMinimizeUnsatCoreDropsIrrelevantLiterals(t *testing.T) {
	b := solver.NewBody()
	// x2 never appears in any clause; only x1=true conflicts with (-x1).
	// An over-approximate conflict naming both x1 and x2 should minimize
	// down to just x1.
	b.AddClause([]solver.Lit{{V: 1, Neg: true}})

	conflict := []Literal{lit(1, true), lit(2, true)} // negation of assumed {x1=true, x2=true}
	core, err := minimizeUnsatCore(b, conflict)
	require.NoError(t, err)
	require.Len(t, core, 1)
	assert.Equal(t, VarID(1), core[0].Var())
}
