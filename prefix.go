package ssat

import "github.com/pkg/errors"

// Prefix describes the two-level quantifier structure of a 2SSAT formula:
// an outer randomized block R, an inner existential block E, and an
// internal block of Tseitin/auxiliary variables that participate in
// neither quantifier.
type Prefix struct {
	R        []VarID
	E        []VarID
	Internal []VarID

	// Prob gives the per-variable probability of being assigned true for
	// every variable in R. Variables not present here but present in R
	// are a construction error (see NewPrefix).
	Prob map[VarID]float64

	tagIndex map[VarID]Tag
}

// NewPrefix validates the 2SSAT shape described by spec §4.6's
// pre-condition ("the outermost quantifier block is Random") and returns
// a Prefix, or a ShapeError if the shape is invalid.
func NewPrefix(r, e, internal []VarID, prob map[VarID]float64) (Prefix, error) {
	if len(r) == 0 {
		return Prefix{}, ShapeError{Reason: "root quantifier block (random) is empty; a 2SSAT prefix requires rootVars[0] to be Random"}
	}
	seen := make(map[VarID]Tag, len(r)+len(e)+len(internal))
	for _, v := range r {
		if _, dup := seen[v]; dup {
			return Prefix{}, ShapeError{Reason: "variable " + v.String() + " appears in more than one quantifier block"}
		}
		seen[v] = Random
		if _, ok := prob[v]; !ok {
			return Prefix{}, ShapeError{Reason: "random variable " + v.String() + " has no probability assigned"}
		}
	}
	for _, v := range e {
		if _, dup := seen[v]; dup {
			return Prefix{}, ShapeError{Reason: "variable " + v.String() + " appears in more than one quantifier block"}
		}
		seen[v] = Exist
	}
	for _, v := range internal {
		if _, dup := seen[v]; dup {
			return Prefix{}, ShapeError{Reason: "variable " + v.String() + " appears in more than one quantifier block"}
		}
		seen[v] = Internal
	}
	for v, p := range prob {
		if p < 0 || p > 1 {
			return Prefix{}, ShapeError{Reason: "probability for " + v.String() + " out of [0,1]"}
		}
		if seen[v] != Random {
			return Prefix{}, ShapeError{Reason: "probability assigned to non-random variable " + v.String()}
		}
	}

	out := Prefix{
		R:        append([]VarID(nil), r...),
		E:        append([]VarID(nil), e...),
		Internal: append([]VarID(nil), internal...),
		Prob:     make(map[VarID]float64, len(prob)),
		tagIndex: seen,
	}
	for k, v := range prob {
		out.Prob[k] = v
	}
	return out, nil
}

// TagOf returns the Tag of v within p, or an error if v does not appear in
// any block.
func (p Prefix) TagOf(v VarID) (Tag, error) {
	t, ok := p.tagIndex[v]
	if !ok {
		return 0, errors.Errorf("variable %s not present in prefix", v)
	}
	return t, nil
}
