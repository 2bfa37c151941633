package ssat

// Problem is a frozen input to an Engine: a quantifier prefix, a clause
// set, and an optional clause-selector map. Per spec §3's Lifecycle
// paragraph, a Problem is built once and never mutated afterward.
type Problem struct {
	Prefix  Prefix
	Clauses []Clause

	// Selectors maps a clause index (into Clauses) to the selector
	// literal sᵢ reserved for that clause. A clause with a selector is
	// loaded into the body solver as (sᵢ ∨ cᵢ); asserting ¬sᵢ activates
	// it. Selectors are optional: a Problem with a nil Selectors map
	// loads all clauses unconditionally active.
	Selectors map[int]Literal
}

// NewProblem validates clause indices referenced by selectors and returns
// a Problem.
func NewProblem(prefix Prefix, clauses []Clause, selectors map[int]Literal) (Problem, error) {
	for idx := range selectors {
		if idx < 0 || idx >= len(clauses) {
			return Problem{}, ShapeError{Reason: "selector references out-of-range clause index"}
		}
	}
	return Problem{
		Prefix:    prefix,
		Clauses:   append([]Clause(nil), clauses...),
		Selectors: selectors,
	}, nil
}
