// Package solver provides a thin incremental-SAT binding (C1/C3/C4 of the
// ssat core) over github.com/go-air/gini. It knows nothing about
// quantifier prefixes or probabilities — those belong to the ssat
// package, which composes two independent solver instances (a Body for
// S1 and a Selector for S2) from the primitives here.
//
// The package deliberately mirrors the translation-table idiom of
// operator-lifecycle-manager's resolver/solver package (litMapping): a
// small map between a caller-supplied variable identifier and the z.Lit
// universe of one particular *gini.Gini instance.
package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// VarID identifies a variable in the caller's numbering. It is meaningful
// only relative to one VarMap; the same VarID allocated in two different
// VarMaps (e.g. one per solver instance) refers to unrelated gini
// variables, by design — each solver instance owns its own variable
// universe.
type VarID int32

// Lit pairs a VarID with a polarity.
type Lit struct {
	V   VarID
	Neg bool
}

// Negate returns the negation of l.
func (l Lit) Negate() Lit {
	return Lit{V: l.V, Neg: !l.Neg}
}

// VarMap translates between caller VarIDs and the z.Lit universe of a
// single *gini.Gini. Literals are allocated lazily on first reference, the
// way litMapping.newLitMapping allocates one z.Lit per input Variable.
type VarMap struct {
	g    *gini.Gini
	lits map[VarID]z.Lit
	vars map[z.Lit]VarID
}

// NewVarMap returns a VarMap backed by g.
func NewVarMap(g *gini.Gini) *VarMap {
	return &VarMap{
		g:    g,
		lits: make(map[VarID]z.Lit),
		vars: make(map[z.Lit]VarID),
	}
}

// Alloc ensures v has an allocated z.Lit, allocating one if necessary, and
// returns its positive literal.
func (m *VarMap) Alloc(v VarID) z.Lit {
	if l, ok := m.lits[v]; ok {
		return l
	}
	l := m.g.Lit()
	m.lits[v] = l
	m.vars[l] = v
	return l
}

// Resolve returns the z.Lit corresponding to l, allocating l's variable if
// it has not been seen before.
func (m *VarMap) Resolve(l Lit) z.Lit {
	base := m.Alloc(l.V)
	if l.Neg {
		return base.Not()
	}
	return base
}

// VarOf returns the VarID corresponding to the gini literal gl, and
// whether one is known. The polarity of gl is ignored: VarOf answers "what
// variable is this", not "what literal".
func (m *VarMap) VarOf(gl z.Lit) (VarID, bool) {
	pos := gl
	if !pos.IsPos() {
		pos = pos.Not()
	}
	v, ok := m.vars[pos]
	return v, ok
}

// LitOf reconstructs the caller-facing Lit corresponding to gini literal
// gl (same variable, same polarity), or false if gl's variable is unknown.
func (m *VarMap) LitOf(gl z.Lit) (Lit, bool) {
	v, ok := m.VarOf(gl)
	if !ok {
		return Lit{}, false
	}
	return Lit{V: v, Neg: !gl.IsPos()}, true
}
