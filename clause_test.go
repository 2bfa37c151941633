package ssat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClauseRejectsZeroLiteral(t *testing.T) {
	_, err := NewClause(Literal{})
	require.Error(t, err)
}

func TestNewClauseRejectsDuplicateLiteral(t *testing.T) {
	_, err := NewClause(lit(1, false), lit(1, false))
	require.Error(t, err)
	assert.IsType(t, DuplicateLiteral{}, err)
}

func TestNewClauseRejectsTautology(t *testing.T) {
	_, err := NewClause(lit(1, false), lit(1, true))
	require.Error(t, err)
	assert.IsType(t, Tautology(0), err)
}

func TestNewClauseAcceptsDistinctLiterals(t *testing.T) {
	c, err := NewClause(lit(1, false), lit(2, true))
	require.NoError(t, err)
	assert.Len(t, c, 2)
}
