package ssat

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/qmo1222/ssatABC/cubenet"
	"github.com/qmo1222/ssatABC/solver"
)

// Result is the outcome of a Solve call: a tagged sum of "ran to
// completion or threshold" and "was cancelled mid-flight", per Design
// Note 9's preference for explicit sum types over polymorphism.
type Result struct {
	SatPb     float64
	UnsatPb   float64
	Cancelled bool
}

// Engine owns the pair of cooperating CNF solvers (S1, S2) and the cube
// stores for one counterexample-guided enumeration run. Engine is not
// safe for concurrent Solve calls; a single atomic re-entrancy guard
// enforces that, mirroring the single-Solve-entry-point posture of
// operator-lifecycle-manager's solver.Solver.
type Engine struct {
	problem Problem

	body     *solver.Body
	selector *solver.Selector

	unsat UnsatCubeStore
	sat   SatCubeStore

	rangeBound  float64
	batchLimit  int
	minimize    bool
	minimizeSet bool
	generalize  GeneralizationPolicy
	logger      Logger
	sink        cubenet.Sink

	hitting *hittingSetGeneralizer

	running int32
}

// New builds an Engine for problem, applying options over the defaults
// (hitting-set generalization, silent logging, an independent
// probability sink, a batch limit of 1), following the
// options-then-defaults idiom of solver.New.
func New(problem Problem, options ...Option) (*Engine, error) {
	if len(problem.Prefix.R) == 0 {
		return nil, ShapeError{Reason: "prefix has no random block"}
	}

	e := &Engine{problem: problem, hitting: newHittingSetGeneralizer()}
	for _, opt := range append(append([]Option{}, options...), defaultOptions...) {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.body = solver.NewBody()
	for idx, clause := range problem.Clauses {
		lits := toSolverLits([]Literal(clause))
		if sel, ok := problem.Selectors[idx]; ok {
			e.body.AddClauseWithSelector(lits, toSolverLit(sel))
		} else {
			e.body.AddClause(lits)
		}
	}

	ord := append([]VarID(nil), problem.Prefix.R...)
	e.selector = solver.NewSelector(toSolverVarIDs(ord))

	return e, nil
}

func toSolverVarIDs(vs []VarID) []solver.VarID {
	out := make([]solver.VarID, len(vs))
	for i, v := range vs {
		out[i] = solver.VarID(v)
	}
	return out
}

// Solve runs the counterexample-guided enumeration loop of spec §4.6
// until the uncertainty interval closes below the configured range, or
// S2 becomes UNSAT (exact result), or ctx is cancelled.
func (e *Engine) Solve(ctx context.Context) (Result, error) {
	if !atomic.CompareAndSwapInt32(&e.running, 0, 1) {
		return Result{}, newSolverError("Solve", fmt.Errorf("already running"))
	}
	defer atomic.StoreInt32(&e.running, 0)

	unsatPb, satPb := 0.0, 0.0
	var unsatBatch []Cube
	var satBatch []Cube
	start := time.Now()

	for {
		if 1-unsatPb-satPb <= e.rangeBound {
			return Result{SatPb: satPb, UnsatPb: unsatPb}, nil
		}

		if err := ctx.Err(); err != nil {
			return Result{SatPb: satPb, UnsatPb: unsatPb, Cancelled: true}, nil
		}

		candidate, ok := e.selector.NextCandidate()
		if !ok {
			unsatPb = e.sink.FlushUnsat(toCubenetCubes(e.problem.Prefix, unsatBatch))
			satPb = e.sink.FlushSat(toCubenetCubes(e.problem.Prefix, satBatch))
			unsatBatch, satBatch = nil, nil
			return Result{SatPb: satPb, UnsatPb: unsatPb}, nil
		}

		r := fromSolverLits(candidate)
		out := e.body.Test(toSolverLits(r))

		if !out.Sat {
			var core Clause
			var err error
			if e.minimize {
				core, err = minimizeUnsatCore(e.body, fromSolverLits(out.Conflict))
			} else {
				core, err = rawUnsatCore(fromSolverLits(out.Conflict))
			}
			if err != nil {
				return Result{}, newSolverError("unsatCore", err)
			}
			e.unsat.Append(core)
			e.selector.AddClause(toSolverLits([]Literal(core)))
			unsatBatch = append(unsatBatch, cubeOf(core))

			if len(unsatBatch) >= e.batchLimit {
				unsatPb = e.sink.FlushUnsat(toCubenetCubes(e.problem.Prefix, unsatBatch))
				unsatBatch = nil
				e.logger.Infof("  > Collect %d UNSAT cubes, convert to network", e.unsat.Len())
				e.logger.Infof("  > current unsat prob = %v", unsatPb)
				e.logger.Infof("  > current time %v", time.Since(start))
			}
			continue
		}

		model := modelAdapter{m: out.Model}
		b, err := e.generalize(e.problem, r, model, e.hitting)
		if err != nil {
			return Result{}, newSolverError("generalize", err)
		}
		cube := cubeOf(b)
		e.sat.Append(cube)
		e.selector.AddClause(toSolverLits([]Literal(b)))
		satBatch = append(satBatch, cube)

		if len(satBatch) >= e.batchLimit {
			satPb = e.sink.FlushSat(toCubenetCubes(e.problem.Prefix, satBatch))
			satBatch = nil
			e.logger.Infof("  > Collect %d SAT cubes, convert to network", e.sat.Len())
			e.logger.Infof("  > current sat prob = %v", satPb)
			e.logger.Infof("  > current time %v", time.Since(start))
		}
	}
}
