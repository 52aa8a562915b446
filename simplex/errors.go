package simplex

import "errors"

// Terminal solution errors. Do not wrap these sentinels with fmt.Errorf;
// callers use errors.Is directly.
var (
	// ErrInfinite indicates the problem is unbounded: the objective can be
	// improved without limit in the optimizing direction, or an optimal
	// tableau still carries a non-zero artificial variable in its basis
	// (meaning no feasible point of the original problem was ever reached).
	ErrInfinite = errors.New("simplex: solution is unbounded (infinite)")

	// ErrAbsent indicates pivoting detected cycling (the same column was
	// chosen to enter the basis twice in a row) and gave up rather than loop
	// forever. Package bnb also reports it for a fork whose two branches
	// both fail.
	ErrAbsent = errors.New("simplex: no solution found")
)

// Input validation errors.
var (
	// ErrEmptyObjective is the value NewProblem panics with when given an
	// objective function with zero coefficients.
	ErrEmptyObjective = errors.New("simplex: objective function has no coefficients")

	// ErrBadArtificialBasis is returned when the initial tableau cannot find
	// exactly one artificial column per row: a corrupt or hand-built Problem.
	ErrBadArtificialBasis = errors.New("simplex: could not identify one artificial column per constraint row")
)
