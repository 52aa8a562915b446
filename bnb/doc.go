// Package bnb implements parallel branch-and-bound over a simplex.Problem's
// fractional significant variables, following the shape of
// katalvlaran/lvlath/tsp's bb.go (a dedicated engine, explicit incumbent
// fields, deterministic branching-variable choice) but forking two children
// per node instead of lvlath's single DFS path, since the relaxation bound
// here comes from a full simplex solve rather than a cheap combinatorial
// lower bound.
//
// At every fractional node, the left child pins x_i <= floor(x_i) (promoted
// to an equality when floor(x_i) == 0, since a slack column would be
// redundant) and the right child pins x_i >= floor(x_i)+1. Both children are
// solved, optionally in their own goroutine, and the result is folded into a
// single mutex-guarded incumbent: take any feasible result when none exists
// yet, otherwise keep the strictly better of the two; if both sides fail,
// the fork's composite result is always simplex.ErrAbsent.
package bnb
