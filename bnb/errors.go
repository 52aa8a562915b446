package bnb

import "errors"

// ErrNoIntegerSolution is returned by Solve if the search ends with neither
// a solution nor an error. When both branches of a fork fail, the search
// reports simplex.ErrAbsent instead, and Solve returns that error.
var ErrNoIntegerSolution = errors.New("bnb: no integer-feasible solution found")
