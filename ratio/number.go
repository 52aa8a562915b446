package ratio

import (
	"math"
	"math/big"
)

// Kind identifies which of the four projective states a Number holds.
type Kind uint8

const (
	// KindFinite is an ordinary p/q value, held exactly in val.
	KindFinite Kind = iota
	// KindPosInf is positive infinity.
	KindPosInf
	// KindNegInf is negative infinity.
	KindNegInf
	// KindNaN is "not a number": the result of an indeterminate operation
	// such as Inf + (-Inf) or Inf / Inf.
	KindNaN
)

// Number is an extended rational. The zero value is the exact integer 0,
// since KindFinite is zero and the zero value of big.Rat is 0/1.
type Number struct {
	kind Kind
	val  big.Rat
}

// Zero returns the exact value 0.
func Zero() Number { return Number{} }

// One returns the exact value 1.
func One() Number { return FromInt64(1) }

// PosInf returns +Inf.
func PosInf() Number { return Number{kind: KindPosInf} }

// NegInf returns -Inf.
func NegInf() Number { return Number{kind: KindNegInf} }

// NaN returns the indeterminate value.
func NaN() Number { return Number{kind: KindNaN} }

// FromInt64 returns the exact integer n.
func FromInt64(n int64) Number {
	var r big.Rat
	r.SetInt64(n)
	return Number{kind: KindFinite, val: r}
}

// FromFrac returns the exact fraction num/den. Panics if den is zero, same
// as big.Rat.SetFrac64.
func FromFrac(num, den int64) Number {
	var r big.Rat
	r.SetFrac64(num, den)
	return Number{kind: KindFinite, val: r}
}

// FromBigRat returns the exact value of r, copying it.
func FromBigRat(r *big.Rat) Number {
	var v big.Rat
	v.Set(r)
	return Number{kind: KindFinite, val: v}
}

// FromBigInt returns the exact integer value of n.
func FromBigInt(n *big.Int) Number {
	var r big.Rat
	r.SetInt(n)
	return Number{kind: KindFinite, val: r}
}

// FromFloat64 converts f, mapping IEEE infinities and NaN onto the
// projective values of the same name and any finite f onto its exact binary
// value (no rounding: float64 values are already dyadic rationals).
func FromFloat64(f float64) Number {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return PosInf()
	case math.IsInf(f, -1):
		return NegInf()
	default:
		var r big.Rat
		r.SetFloat64(f)
		return Number{kind: KindFinite, val: r}
	}
}

// Kind reports which projective state n holds.
func (n Number) Kind() Kind { return n.kind }

// IsNaN reports whether n is the indeterminate value.
func (n Number) IsNaN() bool { return n.kind == KindNaN }

// IsPosInf reports whether n is +Inf.
func (n Number) IsPosInf() bool { return n.kind == KindPosInf }

// IsNegInf reports whether n is -Inf.
func (n Number) IsNegInf() bool { return n.kind == KindNegInf }

// IsInf reports whether n is +Inf or -Inf.
func (n Number) IsInf() bool { return n.kind == KindPosInf || n.kind == KindNegInf }

// IsFinite reports whether n holds an exact fraction.
func (n Number) IsFinite() bool { return n.kind == KindFinite }

// IsZero reports whether n is the exact value 0.
func (n Number) IsZero() bool { return n.kind == KindFinite && n.val.Sign() == 0 }

// IsInteger reports whether n is finite and has denominator 1.
func (n Number) IsInteger() bool { return n.kind == KindFinite && n.val.IsInt() }

// Rat returns the underlying exact fraction and true, or (nil, false) if n
// is not finite. The returned value is a copy; mutating it does not affect n.
func (n Number) Rat() (*big.Rat, bool) {
	if n.kind != KindFinite {
		return nil, false
	}
	var r big.Rat
	r.Set(&n.val)
	return &r, true
}

// Sign returns -1, 0 or +1 for negative, zero and positive values
// respectively, treating PosInf as +1 and NegInf as -1. NaN has no sign and
// Sign returns 0 for it; callers that care must check IsNaN first.
func (n Number) Sign() int {
	switch n.kind {
	case KindPosInf:
		return 1
	case KindNegInf:
		return -1
	case KindFinite:
		return n.val.Sign()
	default:
		return 0
	}
}

// Neg returns -n. -NaN is NaN; -(+Inf) is -Inf and vice versa.
func (n Number) Neg() Number {
	switch n.kind {
	case KindPosInf:
		return NegInf()
	case KindNegInf:
		return PosInf()
	case KindNaN:
		return NaN()
	default:
		var r big.Rat
		r.Neg(&n.val)
		return Number{kind: KindFinite, val: r}
	}
}

// Add implements the full projective addition table: NaN is absorbing,
// Inf + (-Inf) is NaN, and an infinity plus a finite value is unchanged.
func (n Number) Add(o Number) Number {
	if n.kind == KindNaN || o.kind == KindNaN {
		return NaN()
	}
	switch n.kind {
	case KindPosInf:
		if o.kind == KindNegInf {
			return NaN()
		}
		return PosInf()
	case KindNegInf:
		if o.kind == KindPosInf {
			return NaN()
		}
		return NegInf()
	default:
		switch o.kind {
		case KindPosInf:
			return PosInf()
		case KindNegInf:
			return NegInf()
		default:
			var r big.Rat
			r.Add(&n.val, &o.val)
			return Number{kind: KindFinite, val: r}
		}
	}
}

// Sub returns n - o.
func (n Number) Sub(o Number) Number { return n.Add(o.Neg()) }

// Mul implements the full projective multiplication table: NaN is
// absorbing, 0 * Inf is NaN, and Inf * Inf takes the sign of the product.
func (n Number) Mul(o Number) Number {
	if n.kind == KindNaN || o.kind == KindNaN {
		return NaN()
	}
	if n.kind == KindFinite && o.kind == KindFinite {
		var r big.Rat
		r.Mul(&n.val, &o.val)
		return Number{kind: KindFinite, val: r}
	}
	if n.IsInf() && o.IsInf() {
		if n.Sign()*o.Sign() > 0 {
			return PosInf()
		}
		return NegInf()
	}
	infSide, finSide := n, o
	if !n.IsInf() {
		infSide, finSide = o, n
	}
	switch {
	case finSide.IsZero():
		return NaN()
	case finSide.Sign() < 0:
		return infSide.Neg()
	default:
		return infSide
	}
}

// Div implements the full projective division table:
//
//	f / 0   -> +Inf if f>0, -Inf if f<0, NaN if f==0
//	f / Inf -> 0, for any finite f (either sign of infinity)
//	Inf/Inf -> NaN
//	Inf / f -> signed infinity, sign(n) * sign(o)
func (n Number) Div(o Number) Number {
	if n.kind == KindNaN || o.kind == KindNaN {
		return NaN()
	}
	switch {
	case n.IsInf() && o.IsInf():
		return NaN()
	case n.IsInf():
		if o.Sign() < 0 {
			return n.Neg()
		}
		return n
	case o.IsInf():
		return Zero()
	default:
		if o.IsZero() {
			switch {
			case n.IsZero():
				return NaN()
			case n.Sign() > 0:
				return PosInf()
			default:
				return NegInf()
			}
		}
		var r big.Rat
		r.Quo(&n.val, &o.val)
		return Number{kind: KindFinite, val: r}
	}
}

// Floor returns the greatest integer not exceeding n, and true, or
// (nil, false) if n is not finite.
func (n Number) Floor() (*big.Int, bool) {
	if n.kind != KindFinite {
		return nil, false
	}
	var q, m big.Int
	q.DivMod(n.val.Num(), n.val.Denom(), &m)
	return &q, true
}

// rank orders the four kinds for TotalCmp: NaN < -Inf < finite < +Inf.
func rank(k Kind) int {
	switch k {
	case KindNaN:
		return 0
	case KindNegInf:
		return 1
	case KindFinite:
		return 2
	default:
		return 3
	}
}

// TotalCmp returns -1, 0 or +1 comparing n and o under the total order
// NaN < -Inf < finite values (by value) < +Inf. Equal infinities (and NaN
// against NaN) compare equal under this order, even though PartialCmp
// reports them as unordered.
func (n Number) TotalCmp(o Number) int {
	rn, ro := rank(n.kind), rank(o.kind)
	if rn != ro {
		if rn < ro {
			return -1
		}
		return 1
	}
	if n.kind == KindFinite {
		return n.val.Cmp(&o.val)
	}
	return 0
}

// PartialCmp returns the comparison and true if n and o are ordered, or
// (0, false) if either is NaN or both are the same infinity (+Inf vs +Inf,
// -Inf vs -Inf): those pairs have no meaningful strict order even though
// TotalCmp assigns them one for sorting purposes.
func (n Number) PartialCmp(o Number) (int, bool) {
	if n.kind == KindNaN || o.kind == KindNaN {
		return 0, false
	}
	if n.kind == o.kind && n.kind != KindFinite {
		return 0, false
	}
	return n.TotalCmp(o), true
}

// Equal reports value equality: +Inf equals +Inf, -Inf equals -Inf, finite
// values compare by value, and NaN is never equal to anything, including
// itself.
func (n Number) Equal(o Number) bool {
	switch {
	case n.kind == KindNaN || o.kind == KindNaN:
		return false
	case n.kind != o.kind:
		return false
	case n.kind == KindFinite:
		return n.val.Cmp(&o.val) == 0
	default:
		return true
	}
}

// String renders n the way a log line or test failure message should show
// it: "Inf", "-Inf", "NaN", or the exact fraction (e.g. "3/4", "-2").
func (n Number) String() string {
	switch n.kind {
	case KindPosInf:
		return "Inf"
	case KindNegInf:
		return "-Inf"
	case KindNaN:
		return "NaN"
	default:
		return n.val.RatString()
	}
}
