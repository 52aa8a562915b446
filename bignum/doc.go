// Package bignum implements Number, the symbolic "big*M + small" value a
// Big-M simplex objective row is built from. M stands for an unspecified,
// arbitrarily large constant: big carries its coefficient, small carries
// everything else. Comparisons are lexicographic on (big, small), which is
// exactly "as M grows without bound" ordering, so a simplex engine never has
// to pick a concrete value for M.
//
// Multiplication drops the big*big cross term: this package's Mul panics if
// asked to multiply two values that both carry a non-zero big component,
// because the solver never needs that product - only ObjectiveRow*Column
// products occur, and the column side of those is always a plain exact
// rational, applied through ScaleRational rather than Mul.
package bignum
