package simplex

import (
	"github.com/yevhenk/shiplp/bignum"
	"github.com/yevhenk/shiplp/ratio"
)

// Problem is a linear program already in canonical simplex form: every row
// has a unit artificial-variable column, every non-equals row has its own
// slack/compensating column, and the objective has been lifted into Big-M
// space. A is m x n, B has length m, Objective.Coefficients has length n.
type Problem struct {
	Objective ObjectiveFunction[bignum.Number]
	A         [][]ratio.Number
	B         []ratio.Number
}

// NewProblem normalizes objective and constraints into canonical form:
//
//  1. pad every row (objective and constraints) to the widest row's length
//     with exact zeros;
//  2. negate any constraint whose RHS is negative, flipping its sign;
//  3. give every non-equals constraint its own slack (Less: +1) or
//     compensating (Greater: -1) column, zero on every other row;
//  4. lift the objective into Big-M space;
//  5. give every constraint row a unit artificial-variable column, with a
//     Big-M penalty (sign depending on Minimization) on the objective.
//
// Panics if objective has zero coefficients (there is nothing to optimize).
func NewProblem(objective ObjectiveFunction[ratio.Number], constraints []Constraint) Problem {
	if len(objective.Coefficients) == 0 {
		panic(ErrEmptyObjective)
	}
	return normalize(objective, constraints)
}

func normalize(objective ObjectiveFunction[ratio.Number], constraints []Constraint) Problem {
	obj := NewObjectiveFunction(objective.Coefficients, objective.Minimization)
	cons := make([]Constraint, len(constraints))
	for i, c := range constraints {
		cons[i] = NewConstraint(c.Coefficients, c.Sign, c.RHS)
	}

	// Step 1: pad to the maximum width across the objective and every
	// constraint.
	width := len(obj.Coefficients)
	for _, c := range cons {
		if len(c.Coefficients) > width {
			width = len(c.Coefficients)
		}
	}
	obj.Coefficients = padRational(obj.Coefficients, width)
	for i := range cons {
		cons[i].Coefficients = padRational(cons[i].Coefficients, width)
	}

	// Step 2: negate constraints with a negative RHS (flips their sign).
	for i, c := range cons {
		if c.RHS.Sign() < 0 {
			cons[i] = c.ScaleBy(ratio.FromInt64(-1))
		}
	}

	// Step 3: one slack/compensating column per non-equals constraint. Each
	// such constraint's own row gets +-1; every other row and the objective
	// get an exact zero in the new column.
	for i, c := range cons {
		if c.Sign == Equals {
			continue
		}
		slackCoeff := ratio.One()
		if c.Sign == Greater {
			slackCoeff = slackCoeff.Neg()
		}
		for j := range cons {
			if j == i {
				cons[j].Coefficients = append(cons[j].Coefficients, slackCoeff)
			} else {
				cons[j].Coefficients = append(cons[j].Coefficients, ratio.Zero())
			}
		}
		obj.Coefficients = append(obj.Coefficients, ratio.Zero())
	}

	// Step 4: lift the objective into Big-M space.
	lifted := ObjectiveFunction[bignum.Number]{
		Coefficients: make([]bignum.Number, len(obj.Coefficients)),
		Minimization: obj.Minimization,
		NSignificant: obj.NSignificant,
	}
	for i, c := range obj.Coefficients {
		lifted.Coefficients[i] = bignum.FromRational(c)
	}

	// Step 5: one artificial unit column per constraint row, with a Big-M
	// penalty on the objective.
	penalty := artificialPenalty(lifted.Minimization)
	m := len(cons)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if j == i {
				cons[j].Coefficients = append(cons[j].Coefficients, ratio.One())
			} else {
				cons[j].Coefficients = append(cons[j].Coefficients, ratio.Zero())
			}
		}
		lifted.Coefficients = append(lifted.Coefficients, penalty)
	}

	A := make([][]ratio.Number, m)
	B := make([]ratio.Number, m)
	for i, c := range cons {
		A[i] = c.Coefficients
		B[i] = c.RHS
	}
	return Problem{Objective: lifted, A: A, B: B}
}

func padRational(row []ratio.Number, width int) []ratio.Number {
	if len(row) >= width {
		return row
	}
	out := make([]ratio.Number, width)
	copy(out, row)
	for i := len(row); i < width; i++ {
		out[i] = ratio.Zero()
	}
	return out
}

// artificialPenalty returns the objective-row coefficient an artificial
// variable's column carries: +1*M when minimizing (penalizing its presence
// upward), -1*M when maximizing.
func artificialPenalty(minimization bool) bignum.Number {
	if minimization {
		return bignum.OneBig()
	}
	return bignum.OneBig().Neg()
}

// NumConstraints returns the number of rows.
func (p Problem) NumConstraints() int { return len(p.A) }

// NumVars returns the number of columns (significant plus every
// slack/artificial column added so far).
func (p Problem) NumVars() int {
	if len(p.A) == 0 {
		return 0
	}
	return len(p.A[0])
}

// Clone returns a deep copy of p: no slice in the result aliases p's.
func (p Problem) Clone() Problem {
	A := make([][]ratio.Number, len(p.A))
	for i, row := range p.A {
		A[i] = append([]ratio.Number(nil), row...)
	}
	return Problem{
		Objective: ObjectiveFunction[bignum.Number]{
			Coefficients: append([]bignum.Number(nil), p.Objective.Coefficients...),
			Minimization: p.Objective.Minimization,
			NSignificant: p.Objective.NSignificant,
		},
		A: A,
		B: append([]ratio.Number(nil), p.B...),
	}
}

// AddCut returns a clone of p with one extra constraint row
// x[varIndex] <sign> rhs appended in canonical form. Per the resolution of
// the original's open "column shift" question (see DESIGN.md), the new
// slack and artificial columns are appended at the end of the matrix rather
// than inserted at NSignificant: that way no index already recorded in any
// basis (of p, or of any problem derived from it) is ever invalidated by a
// later cut.
func (p Problem) AddCut(varIndex int, sign Sign, rhs ratio.Number) Problem {
	q := p.Clone()

	hasSlack := sign != Equals
	if hasSlack {
		for i := range q.A {
			q.A[i] = append(q.A[i], ratio.Zero())
		}
		q.Objective.Coefficients = append(q.Objective.Coefficients, bignum.Zero())
	}

	newRow := make([]ratio.Number, len(q.Objective.Coefficients))
	for i := range newRow {
		newRow[i] = ratio.Zero()
	}
	newRow[varIndex] = ratio.One()
	if hasSlack {
		slackCoeff := ratio.One()
		if sign == Greater {
			slackCoeff = slackCoeff.Neg()
		}
		newRow[len(newRow)-1] = slackCoeff
	}

	for i := range q.A {
		q.A[i] = append(q.A[i], ratio.Zero())
	}
	q.Objective.Coefficients = append(q.Objective.Coefficients, artificialPenalty(q.Objective.Minimization))
	newRow = append(newRow, ratio.One())

	q.A = append(q.A, newRow)
	q.B = append(q.B, rhs)

	return q
}
