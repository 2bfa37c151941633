package ssat

import "github.com/qmo1222/ssatABC/cubenet"

// Cube is a conjunction of literals describing a subspace of R-space —
// equivalently a partial assignment to the random block.
type Cube []Literal

// Negate returns the blocking clause (disjunction) that forbids exactly
// this cube: the negation of a conjunction is the disjunction of the
// negated literals.
func (c Cube) Negate() Clause {
	out := make([]Literal, len(c))
	for i, l := range c {
		out[i] = l.Negate()
	}
	cl, _ := NewClause(out...) // a cube built from a candidate assignment
	// carries each R-variable at most once, so this cannot fail.
	return cl
}

// cubeOf returns the cube a blocking clause forbids: the negation of
// each of its literals.
func cubeOf(c Clause) Cube {
	out := make(Cube, len(c))
	for i, l := range c {
		out[i] = l.Negate()
	}
	return out
}

// UnsatCubeStore is an append-only sequence of blocking clauses over
// R ∪ selectors, each representing a region of R-space known UNSAT. It
// grows monotonically for the lifetime of an Engine, per spec §3.
type UnsatCubeStore struct {
	clauses []Clause
}

// Append records a newly learned UNSAT blocking clause.
func (s *UnsatCubeStore) Append(c Clause) {
	s.clauses = append(s.clauses, c)
}

// Len returns the number of blocking clauses recorded so far.
func (s *UnsatCubeStore) Len() int {
	return len(s.clauses)
}

// Clauses returns the recorded blocking clauses, in the order they were
// learned. The returned slice must not be modified.
func (s *UnsatCubeStore) Clauses() []Clause {
	return s.clauses
}

// Cubes returns the UNSAT region forbidden by each recorded clause.
func (s *UnsatCubeStore) Cubes() []Cube {
	out := make([]Cube, len(s.clauses))
	for i, c := range s.clauses {
		out[i] = cubeOf(c)
	}
	return out
}

// toCubenetCube translates a Cube into the probability-bearing
// representation cubenet.Sink consumes, looking up each literal's
// variable in prefix.Prob. Every literal in a Cube names an R-variable
// (Cube values only ever come from candidate random assignments or their
// blocking clauses), so the lookup always succeeds per NewPrefix's
// invariant that every R-variable carries a probability.
func toCubenetCube(prefix Prefix, c Cube) cubenet.Cube {
	out := make(cubenet.Cube, len(c))
	for i, l := range c {
		out[i] = cubenet.Literal{Prob: prefix.Prob[l.Var()], Neg: l.Negated()}
	}
	return out
}

func toCubenetCubes(prefix Prefix, cubes []Cube) []cubenet.Cube {
	out := make([]cubenet.Cube, len(cubes))
	for i, c := range cubes {
		out[i] = toCubenetCube(prefix, c)
	}
	return out
}

// SatCubeStore is an append-only sequence of generalized subcubes of
// R-space, each known extensible to a full satisfying assignment of Φ.
type SatCubeStore struct {
	cubes []Cube
}

// Append records a newly learned SAT subcube.
func (s *SatCubeStore) Append(c Cube) {
	s.cubes = append(s.cubes, c)
}

// Len returns the number of subcubes recorded so far.
func (s *SatCubeStore) Len() int {
	return len(s.cubes)
}

// Cubes returns the recorded subcubes, in the order they were learned. The
// returned slice must not be modified.
func (s *SatCubeStore) Cubes() []Cube {
	return s.cubes
}
