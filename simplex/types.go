package simplex

import "github.com/yevhenk/shiplp/ratio"

// Numeric is the constraint every coefficient type an ObjectiveFunction can
// hold must satisfy. Both ratio.Number and bignum.Number implement it.
type Numeric interface {
	IsZero() bool
}

// Sign is a constraint's relational operator.
type Sign int

const (
	// Less is "<=".
	Less Sign = -1
	// Equals is "=".
	Equals Sign = 0
	// Greater is ">=".
	Greater Sign = 1
)

// String renders the conventional operator glyph.
func (s Sign) String() string {
	switch s {
	case Less:
		return "<="
	case Greater:
		return ">="
	default:
		return "="
	}
}

// ScaleSign returns the sign a constraint must carry after multiplying both
// sides by r: a strictly negative multiplier flips Less and Greater (and
// leaves Equals alone); a non-negative multiplier, including zero, never
// flips the sign.
func (s Sign) ScaleSign(r ratio.Number) Sign {
	if r.Sign() >= 0 {
		return s
	}
	switch s {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return Equals
	}
}

// Constraint is one row of a linear program before normalization: a vector
// of coefficients, a relational sign, and a right-hand side.
type Constraint struct {
	Coefficients []ratio.Number
	Sign         Sign
	RHS          ratio.Number
}

// NewConstraint copies coeffs so the returned Constraint does not alias the
// caller's slice.
func NewConstraint(coeffs []ratio.Number, sign Sign, rhs ratio.Number) Constraint {
	return Constraint{
		Coefficients: append([]ratio.Number(nil), coeffs...),
		Sign:         sign,
		RHS:          rhs,
	}
}

// ScaleBy multiplies every coefficient, the sign and the RHS of c by r,
// implementing the sign-flip rule for strictly negative r via Sign.ScaleSign.
func (c Constraint) ScaleBy(r ratio.Number) Constraint {
	out := Constraint{
		Coefficients: make([]ratio.Number, len(c.Coefficients)),
		Sign:         c.Sign.ScaleSign(r),
		RHS:          c.RHS.Mul(r),
	}
	for i, v := range c.Coefficients {
		out.Coefficients[i] = v.Mul(r)
	}
	return out
}

// ObjectiveFunction is a linear objective over T (either plain extended
// rationals, as given by a caller, or bignum.Number, once normalize has
// lifted it into Big-M space). NSignificant counts the coefficients that
// are not exactly zero: that count is also the number of "real" decision
// variables a Solution reports, since normalize only ever appends columns
// after them.
type ObjectiveFunction[T Numeric] struct {
	Coefficients []T
	Minimization bool
	NSignificant int
}

// NewObjectiveFunction copies coeffs and computes NSignificant.
func NewObjectiveFunction[T Numeric](coeffs []T, minimization bool) ObjectiveFunction[T] {
	cp := append([]T(nil), coeffs...)
	n := 0
	for _, c := range cp {
		if !c.IsZero() {
			n++
		}
	}
	return ObjectiveFunction[T]{Coefficients: cp, Minimization: minimization, NSignificant: n}
}
