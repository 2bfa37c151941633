package ssat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel is a Model backed by a plain assignment map, for exercising
// the generalizer without a live solver.Body.
type fakeModel map[VarID]bool

func (m fakeModel) Value(l Literal) bool {
	v := m[l.Var()]
	if l.Negated() {
		return !v
	}
	return v
}

func TestHittingSetGeneralizeExistentialWitnessCoversBothPolarities(t *testing.T) {
	// R={x1}, E={y1}; clauses (x1 v y1), (-x1 v y1); y1=True satisfies
	// both regardless of x1, so B should be empty (covers all of R).
	prefix := mustPrefix(t, []VarID{1}, []VarID{2}, nil, map[VarID]float64{1: 0.5})
	problem, err := NewProblem(prefix, []Clause{
		{lit(1, false), lit(2, false)},
		{lit(1, true), lit(2, false)},
	}, nil)
	require.NoError(t, err)

	m := fakeModel{1: true, 2: true}
	h := newHittingSetGeneralizer()
	b, err := h.Generalize(problem, m)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestHittingSetGeneralizeForcedSingletonPicksRandomLiteral(t *testing.T) {
	// R={x1}; single clause (x1) is a forced singleton under any model
	// with x1=true, so B = {-x1}.
	prefix := mustPrefix(t, []VarID{1}, nil, nil, map[VarID]float64{1: 0.5})
	problem, err := NewProblem(prefix, []Clause{{lit(1, false)}}, nil)
	require.NoError(t, err)

	m := fakeModel{1: true}
	h := newHittingSetGeneralizer()
	b, err := h.Generalize(problem, m)
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, VarID(1), b[0].Var())
	assert.True(t, b[0].Negated())
}

func TestHittingSetGeneralizeNeverExceedsCapacity(t *testing.T) {
	prefix := mustPrefix(t, []VarID{1, 2, 3}, nil, nil, map[VarID]float64{1: 0.5, 2: 0.5, 3: 0.5})
	problem, err := NewProblem(prefix, []Clause{
		{lit(1, false)},
		{lit(2, false)},
		{lit(3, false)},
	}, nil)
	require.NoError(t, err)

	m := fakeModel{1: true, 2: true, 3: true}
	h := newHittingSetGeneralizer()
	b, err := h.Generalize(problem, m)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(b), len(problem.Prefix.R))
}

func TestDegenerateGeneralizeNegatesExactly(t *testing.T) {
	r := []Literal{lit(1, false), lit(2, true)}
	b, err := degenerateGeneralize(r)
	require.NoError(t, err)
	require.Len(t, b, 2)
	assert.Equal(t, lit(1, true), b[0])
	assert.Equal(t, lit(2, false), b[1])
}
