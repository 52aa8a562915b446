package bignum

import (
	"fmt"

	"github.com/yevhenk/shiplp/ratio"
)

// Number represents big*M + small for an indeterminate "sufficiently large"
// constant M. The zero value is 0 (both components zero), matching
// ratio.Number's own zero value.
type Number struct {
	Big   ratio.Number
	Small ratio.Number
}

// Zero returns 0*M + 0.
func Zero() Number { return Number{} }

// OneBig returns 1*M + 0: the Big-M penalty coefficient attached to an
// artificial variable's column in the objective row.
func OneBig() Number { return Number{Big: ratio.One()} }

// FromRational lifts a plain extended rational into 0*M + x.
func FromRational(x ratio.Number) Number { return Number{Small: x} }

// Neg returns -n.
func (n Number) Neg() Number { return Number{Big: n.Big.Neg(), Small: n.Small.Neg()} }

// Add returns n + o, componentwise.
func (n Number) Add(o Number) Number {
	return Number{Big: n.Big.Add(o.Big), Small: n.Small.Add(o.Small)}
}

// Sub returns n - o, componentwise.
func (n Number) Sub(o Number) Number {
	return Number{Big: n.Big.Sub(o.Big), Small: n.Small.Sub(o.Small)}
}

// ScaleRational returns n * r for a plain extended rational r, scaling both
// components - this is the case the original source captures via a blanket
// "multiply by any plain numeric type" impl, since r carries no M term.
func (n Number) ScaleRational(r ratio.Number) Number {
	return Number{Big: n.Big.Mul(r), Small: n.Small.Mul(r)}
}

// Mul multiplies two BigM values under the dropped-cross-term rule:
//
//	(a*M + b) * (c*M + d) ~= (a*d + b*c)*M + b*d
//
// The true a*c*M^2 term is discarded because it never matters to the
// solver: it panics instead of silently discarding a term the caller might
// be relying on, so a future misuse is loud rather than silently wrong.
func (n Number) Mul(o Number) Number {
	if !n.Big.IsZero() && !o.Big.IsZero() {
		panic("bignum: Mul of two values with non-zero Big components is unsupported")
	}
	return Number{
		Big:   n.Big.Mul(o.Small).Add(n.Small.Mul(o.Big)),
		Small: n.Small.Mul(o.Small),
	}
}

// Cmp returns -1, 0 or +1 comparing n and o lexicographically on
// (Big, Small) - equivalent to the ordering induced by letting M grow
// without bound.
func (n Number) Cmp(o Number) int {
	if c := n.Big.TotalCmp(o.Big); c != 0 {
		return c
	}
	return n.Small.TotalCmp(o.Small)
}

// IsZero reports whether n is exactly 0*M + 0.
func (n Number) IsZero() bool { return n.Big.IsZero() && n.Small.IsZero() }

// ToRational converts n to a plain extended rational, failing if n still
// carries a non-zero M coefficient: that happens precisely when an
// artificial variable remains in the simplex basis with a non-zero value,
// i.e. the problem is infeasible.
func (n Number) ToRational() (ratio.Number, error) {
	if !n.Big.IsZero() {
		return ratio.Number{}, fmt.Errorf("bignum: value still carries a non-zero M coefficient (%s)", n.Big)
	}
	return n.Small, nil
}

// String renders n as "big*M + small", omitting the M term when it is zero.
func (n Number) String() string {
	if n.Big.IsZero() {
		return n.Small.String()
	}
	return fmt.Sprintf("%s*M + %s", n.Big, n.Small)
}
