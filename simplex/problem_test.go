package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yevhenk/shiplp/ratio"
)

func TestSignScaleSign(t *testing.T) {
	assert.Equal(t, Greater, Less.ScaleSign(ratio.FromInt64(-1)))
	assert.Equal(t, Less, Greater.ScaleSign(ratio.FromInt64(-1)))
	assert.Equal(t, Equals, Equals.ScaleSign(ratio.FromInt64(-1)))
	assert.Equal(t, Less, Less.ScaleSign(ratio.FromInt64(1)))
	assert.Equal(t, Less, Less.ScaleSign(ratio.Zero()))
}

func TestNormalizePadsNegatesAndAddsColumns(t *testing.T) {
	objective := NewObjectiveFunction([]ratio.Number{ratio.FromInt64(1), ratio.FromInt64(1)}, true)
	constraints := []Constraint{
		NewConstraint([]ratio.Number{ratio.FromInt64(1), ratio.FromInt64(2)}, Greater, ratio.FromInt64(4)),
		// negative RHS: -x <= -2, which negation turns into x >= 2; here we
		// just check the sign-flip/negation machinery in isolation.
		NewConstraint([]ratio.Number{ratio.FromInt64(-1)}, Less, ratio.FromInt64(-2)),
	}

	p := NewProblem(objective, constraints)

	// width = max(2 objective, 2, 1) = 2, plus one slack per non-equals row (2)
	// plus one artificial per row (2) = 6.
	assert.Equal(t, 6, p.NumVars())
	assert.Equal(t, 2, p.NumConstraints())
	assert.Equal(t, 2, p.Objective.NSignificant)

	// Row 2 was negated: original RHS -2 < 0, so sign flips Less -> Greater
	// and RHS becomes +2.
	assert.True(t, p.B[1].Equal(ratio.FromInt64(2)))

	// Every row carries exactly one unit artificial column (the last two
	// columns), and exactly one slack column among columns [2,4).
	for i, row := range p.A {
		artCount := 0
		for j := 4; j < 6; j++ {
			if row[j].Equal(ratio.One()) {
				artCount++
			} else {
				require.True(t, row[j].IsZero())
			}
		}
		assert.Equal(t, 1, artCount, "row %d should have exactly one artificial unit entry", i)
	}
}

func TestAddCutAppendsAtEndWithoutDisturbingExistingColumns(t *testing.T) {
	objective := NewObjectiveFunction([]ratio.Number{ratio.FromInt64(1), ratio.FromInt64(1)}, true)
	constraints := []Constraint{
		NewConstraint([]ratio.Number{ratio.FromInt64(1), ratio.FromInt64(2)}, Greater, ratio.FromInt64(4)),
	}
	p := NewProblem(objective, constraints)
	widthBefore := p.NumVars()

	cut := p.AddCut(0, Less, ratio.FromInt64(3))

	assert.Equal(t, p.NumConstraints()+1, cut.NumConstraints())
	// one new slack column + one new artificial column.
	assert.Equal(t, widthBefore+2, cut.NumVars())

	// Original rows are unchanged in their first widthBefore columns.
	for i := 0; i < p.NumConstraints(); i++ {
		for j := 0; j < widthBefore; j++ {
			assert.True(t, cut.A[i][j].Equal(p.A[i][j]), "row %d col %d changed", i, j)
		}
		// the two appended columns are zero on pre-existing rows.
		assert.True(t, cut.A[i][widthBefore].IsZero())
		assert.True(t, cut.A[i][widthBefore+1].IsZero())
	}

	// New row: unit at variable 0, +1 slack, +1 artificial.
	newRow := cut.A[cut.NumConstraints()-1]
	assert.True(t, newRow[0].Equal(ratio.One()))
	assert.True(t, newRow[widthBefore].Equal(ratio.One()))
	assert.True(t, newRow[widthBefore+1].Equal(ratio.One()))
	assert.True(t, cut.B[len(cut.B)-1].Equal(ratio.FromInt64(3)))
}

func TestAddCutEqualsOmitsSlackColumn(t *testing.T) {
	objective := NewObjectiveFunction([]ratio.Number{ratio.FromInt64(1)}, true)
	p := NewProblem(objective, []Constraint{
		NewConstraint([]ratio.Number{ratio.FromInt64(1)}, Greater, ratio.FromInt64(1)),
	})
	widthBefore := p.NumVars()

	cut := p.AddCut(0, Equals, ratio.Zero())

	// only one new column (artificial), no slack, for an Equals cut.
	assert.Equal(t, widthBefore+1, cut.NumVars())
}
