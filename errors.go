package ssat

import (
	"fmt"

	"github.com/pkg/errors"
)

// ShapeError indicates the prefix is not 2SSAT-shaped, an option value or
// selector index is invalid, or some other structural precondition failed.
// NewClause reports malformed clauses with its own errors instead.
// Shape errors are fatal: the caller should not retry.
type ShapeError struct {
	Reason string
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("ssat: shape error: %s", e.Reason)
}

// CapacityError indicates a hitting-set generalizer produced a clause
// with more literals than |R|, violating the capacity invariant of spec
// §4.5. It carries the offending clause for diagnosis, per spec §7.3.
type CapacityError struct {
	Clause Clause
	RSize  int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("ssat: capacity error: hitting set produced %d literals, more than |R|=%d: %v", len(e.Clause), e.RSize, e.Clause)
}

// SolverError wraps a failure to obtain a decision from the underlying
// CNF engine (C1). It is fatal; no retry is attempted.
type SolverError struct {
	Op  string
	Err error
}

// newSolverError wraps cause with a stack trace via pkg/errors, the way
// operator-lifecycle-manager's deferred litMap.Error() check surfaces a
// diagnosable error at the Solve boundary rather than a bare string.
func newSolverError(op string, cause error) SolverError {
	return SolverError{Op: op, Err: errors.Wrap(cause, op)}
}

func (e SolverError) Error() string {
	return fmt.Sprintf("ssat: solver error during %s: %v", e.Op, e.Err)
}

func (e SolverError) Unwrap() error {
	return e.Err
}
