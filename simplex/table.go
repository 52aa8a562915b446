package simplex

import (
	"github.com/yevhenk/shiplp/bignum"
	"github.com/yevhenk/shiplp/internal/obslog"
	"github.com/yevhenk/shiplp/ratio"
)

// Tableau is the working state of one Big-M simplex run: the constraint
// matrix, RHS column and objective row of a Problem, plus which column is
// currently basic in each row. Arithmetic on a and b is exact (ratio.Number,
// big.Rat-backed); the objective row stays in Big-M space throughout - a
// deliberate point of departure from the original Rust table.rs, which used
// an f64 matrix (see DESIGN.md).
type Tableau struct {
	nSignificant int
	minimization bool
	basis        []int
	a            [][]ratio.Number
	b            []ratio.Number
	c            []bignum.Number
}

// newTableau builds the initial tableau for p. The starting basis is every
// column whose objective coefficient is exactly the artificial penalty: by
// construction (see problem.go) there is exactly one such column per row,
// appended in row order, whether it came from normalize or from a later
// AddCut.
func newTableau(p Problem) (*Tableau, error) {
	penalty := artificialPenalty(p.Objective.Minimization)
	basis := make([]int, 0, len(p.A))
	for j, coeff := range p.Objective.Coefficients {
		if coeff.Cmp(penalty) == 0 {
			basis = append(basis, j)
		}
	}
	if len(basis) != len(p.A) {
		return nil, ErrBadArtificialBasis
	}

	a := make([][]ratio.Number, len(p.A))
	for i, row := range p.A {
		a[i] = append([]ratio.Number(nil), row...)
	}

	return &Tableau{
		nSignificant: p.Objective.NSignificant,
		minimization: p.Objective.Minimization,
		basis:        basis,
		a:            a,
		b:            append([]ratio.Number(nil), p.B...),
		c:            append([]bignum.Number(nil), p.Objective.Coefficients...),
	}, nil
}

func (t *Tableau) basisCoefficient(row int) bignum.Number { return t.c[t.basis[row]] }

// columnEstimate is the reduced cost of column j: sum_i(cB_i * a[i][j]) - c_j.
func (t *Tableau) columnEstimate(j int) bignum.Number {
	var acc bignum.Number
	for i := range t.a {
		acc = acc.Add(t.basisCoefficient(i).ScaleRational(t.a[i][j]))
	}
	return acc.Sub(t.c[j])
}

// functionEstimate is the current objective value, sum_i(cB_i * b_i), still
// in Big-M space.
func (t *Tableau) functionEstimate() bignum.Number {
	var acc bignum.Number
	for i := range t.b {
		acc = acc.Add(t.basisCoefficient(i).ScaleRational(t.b[i]))
	}
	return acc
}

type stepOutcome struct {
	done     bool
	sol      *Solution
	err      error
	pivotCol int
}

// step performs one iteration: pick an entering column (largest positive
// estimate, ties broken by smallest index), detect cycling (same entering
// column as the previous iteration with no intervening progress), pick a
// leaving row by the minimum ratio test, and pivot. havePrev/prevCol carry
// the previous iteration's entering column across calls.
func (t *Tableau) step(prevCol int, havePrev bool) stepOutcome {
	enterCol := -1
	var bestEst bignum.Number
	for j := range t.c {
		est := t.columnEstimate(j)
		if est.Cmp(bignum.Zero()) <= 0 {
			continue
		}
		if enterCol == -1 || est.Cmp(bestEst) > 0 {
			enterCol, bestEst = j, est
		}
	}

	if enterCol == -1 {
		sol, err := t.extractSolution()
		return stepOutcome{done: true, sol: sol, err: err}
	}

	if havePrev && prevCol == enterCol {
		obslog.Log.Debug().Int("column", enterCol).Msg("simplex: cycling detected, same entering column twice")
		return stepOutcome{done: true, err: ErrAbsent}
	}

	leaveRow := -1
	var bestRatio ratio.Number
	for i := range t.a {
		if t.a[i][enterCol].Sign() <= 0 {
			continue
		}
		r := t.b[i].Div(t.a[i][enterCol])
		if leaveRow == -1 || r.TotalCmp(bestRatio) < 0 {
			leaveRow, bestRatio = i, r
		}
	}
	if leaveRow == -1 {
		return stepOutcome{done: true, err: ErrInfinite}
	}

	t.pivot(leaveRow, enterCol)
	obslog.Log.Debug().Int("enter", enterCol).Int("leave_row", leaveRow).Msg("simplex: pivot")

	return stepOutcome{done: false, pivotCol: enterCol}
}

// pivot normalizes row by its entry in col to 1, then eliminates col from
// every other row, and records col as that row's new basic variable.
func (t *Tableau) pivot(row, col int) {
	factor := t.a[row][col]
	for j := range t.a[row] {
		t.a[row][j] = t.a[row][j].Div(factor)
	}
	t.b[row] = t.b[row].Div(factor)

	for i := range t.a {
		if i == row {
			continue
		}
		mult := t.a[i][col]
		if mult.IsZero() {
			continue
		}
		for j := range t.a[i] {
			t.a[i][j] = t.a[i][j].Sub(t.a[row][j].Mul(mult))
		}
		t.b[i] = t.b[i].Sub(t.b[row].Mul(mult))
	}

	t.basis[row] = col
}

// extractSolution reads off the significant variables' values at the
// current (optimal) basis and converts the Big-M objective value to a plain
// rational, failing with ErrInfinite if an artificial variable is still
// basic with a non-zero value (infeasible: no point of the original problem
// was ever reached).
func (t *Tableau) extractSolution() (*Solution, error) {
	vars := make([]ratio.Number, t.nSignificant)
	for i := range vars {
		vars[i] = ratio.Zero()
	}
	for row, col := range t.basis {
		if col < t.nSignificant {
			vars[col] = t.b[row]
		}
	}

	fnVal, err := t.functionEstimate().ToRational()
	if err != nil {
		return nil, ErrInfinite
	}
	return &Solution{Vars: vars, FnVal: fnVal}, nil
}

// Solve runs the Big-M simplex method to completion on p, returning its
// optimum or one of ErrInfinite / ErrAbsent.
func Solve(p Problem) (*Solution, error) {
	t, err := newTableau(p)
	if err != nil {
		return nil, err
	}

	havePrev := false
	prevCol := 0
	for {
		out := t.step(prevCol, havePrev)
		if out.done {
			return out.sol, out.err
		}
		prevCol, havePrev = out.pivotCol, true
	}
}
