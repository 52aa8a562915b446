package simplex

import "github.com/yevhenk/shiplp/ratio"

// Solution is a finite optimum: the value of every significant (original,
// non-auxiliary) decision variable, and the objective value at that point.
// A Problem that is unbounded or cycling never produces a Solution; it
// reports ErrInfinite or ErrAbsent instead (see errors.go).
type Solution struct {
	Vars  []ratio.Number
	FnVal ratio.Number
}
