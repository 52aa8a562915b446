package bnb

import (
	"sync"

	"github.com/yevhenk/shiplp/internal/obslog"
	"github.com/yevhenk/shiplp/ratio"
	"github.com/yevhenk/shiplp/simplex"
)

// engine holds the shared, read-only resources a single Solve call's
// recursive forks need: a semaphore bounding live goroutines, mirroring the
// bounded-dispatch idiom of itohio-EasyRobot's worker_pool.go, re-expressed
// here for binary fork/join instead of chunked ranges.
type engine struct {
	sem chan struct{}
}

// Solve runs branch-and-bound on problem until every significant variable
// takes an integer value at the optimum, or proves no such point exists.
func Solve(problem simplex.Problem, opts Options) (*simplex.Solution, error) {
	e := &engine{sem: make(chan struct{}, opts.workerLimit())}
	sol, err := e.solve(problem)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, ErrNoIntegerSolution
	}
	return sol, nil
}

// solve solves problem's LP relaxation; if every significant variable is
// already integer, that is the answer. Otherwise it forks on the first
// fractional variable (smallest index, for deterministic/reproducible
// runs - see tsp/bb.go's own deterministic-branching rationale) and
// recurses on both children.
func (e *engine) solve(problem simplex.Problem) (*simplex.Solution, error) {
	relaxed, err := simplex.Solve(problem)
	if err != nil {
		return nil, err
	}

	idx, floor, ok := firstFractional(relaxed)
	if !ok {
		return relaxed, nil
	}

	leftSign := simplex.Less
	if floor.Sign() == 0 {
		leftSign = simplex.Equals
	}
	leftProblem := problem.AddCut(idx, leftSign, floor)
	rightBound := floor.Add(ratio.One())
	rightProblem := problem.AddCut(idx, simplex.Greater, rightBound)

	inc := &incumbent{minimization: problem.Objective.Minimization}
	var wg sync.WaitGroup
	wg.Add(2)

	runLeft := func() {
		defer wg.Done()
		sol, err := e.solve(leftProblem)
		inc.update(sol, err)
	}
	runRight := func() {
		defer wg.Done()
		sol, err := e.solve(rightProblem)
		inc.update(sol, err)
	}

	select {
	case e.sem <- struct{}{}:
		go func() {
			defer func() { <-e.sem }()
			runRight()
		}()
	default:
		runRight()
	}
	runLeft()
	wg.Wait()

	obslog.Log.Debug().Int("var", idx).Str("floor", floor.String()).Msg("bnb: fork resolved")

	return inc.sol, inc.err
}

// firstFractional returns the smallest-indexed significant variable whose
// value is not an integer, its floor, and true; or (_, _, false) if every
// significant variable is already integral.
func firstFractional(sol *simplex.Solution) (int, ratio.Number, bool) {
	for i, v := range sol.Vars {
		if v.IsInteger() {
			continue
		}
		floor, ok := v.Floor()
		if !ok {
			continue
		}
		return i, ratio.FromBigInt(floor), true
	}
	return 0, ratio.Number{}, false
}
