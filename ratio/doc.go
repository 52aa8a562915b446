// Package ratio implements Number, an extended (projective) rational: an
// exact fraction backed by math/big.Rat, plus the three values a simplex
// solver needs beyond ordinary fractions: +Inf, -Inf and NaN.
//
// Every arithmetic and comparison operator is total: it is defined for every
// combination of kinds, including the ones ordinary rational arithmetic
// refuses (0*Inf, Inf-Inf, division by zero). The rules are the ones a Big-M
// simplex tableau actually exercises - see number.go for the exact
// cell-by-cell behavior of each operator.
package ratio
