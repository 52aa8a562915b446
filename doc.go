// Package shiplp solves integer ship-to-line assignment problems with an
// exact, floating-point-free Big-M simplex method and parallel
// branch-and-bound.
//
// The module is organized as:
//
//	ratio/    — extended rational numbers (exact fractions, +Inf, -Inf, NaN)
//	bignum/   — symbolic "big*M + small" numbers for the Big-M objective row
//	simplex/  — Problem normalization and the Big-M Tableau pivoting engine
//	bnb/      — parallel branch-and-bound over fractional significant variables
//	shipplan/ — the ship-assignment problem encoding (transport/cost rates,
//	            per-line minimums, per-type ship counts)
//
// A typical caller builds a Problem (directly via simplex.NewProblem, or via
// shipplan.Build for the ship-assignment domain), then calls bnb.Solve to
// get an integer-feasible optimum, or simplex.Solve directly if a
// continuous relaxation is all that's needed.
//
// See DESIGN.md for the grounding ledger behind each package's design.
package shiplp
