package bnb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yevhenk/shiplp/ratio"
	"github.com/yevhenk/shiplp/simplex"
)

func TestIncumbentAdoptsSoleFeasibleChild(t *testing.T) {
	inc := &incumbent{minimization: true}
	sol := &simplex.Solution{Vars: []ratio.Number{ratio.One()}, FnVal: ratio.One()}

	inc.update(nil, simplex.ErrInfinite)
	inc.update(sol, nil)

	require.NotNil(t, inc.sol)
	assert.NoError(t, inc.err)
	assert.True(t, inc.sol.FnVal.Equal(ratio.One()))
}

func TestIncumbentBothChildrenErrorReportsAbsent(t *testing.T) {
	inc := &incumbent{minimization: true}

	inc.update(nil, simplex.ErrInfinite)
	inc.update(nil, simplex.ErrAbsent)

	assert.Nil(t, inc.sol)
	assert.ErrorIs(t, inc.err, simplex.ErrAbsent)
}

func TestIncumbentBothChildrenErrorReportsAbsentRegardlessOfOrder(t *testing.T) {
	inc := &incumbent{minimization: true}

	inc.update(nil, simplex.ErrAbsent)
	inc.update(nil, simplex.ErrInfinite)

	assert.Nil(t, inc.sol)
	assert.ErrorIs(t, inc.err, simplex.ErrAbsent)
}

func TestIncumbentKeepsStrictlyBetterOfTwoFeasibleChildren(t *testing.T) {
	inc := &incumbent{minimization: true}
	worse := &simplex.Solution{Vars: []ratio.Number{ratio.FromInt64(5)}, FnVal: ratio.FromInt64(5)}
	better := &simplex.Solution{Vars: []ratio.Number{ratio.FromInt64(2)}, FnVal: ratio.FromInt64(2)}

	inc.update(worse, nil)
	inc.update(better, nil)

	assert.True(t, inc.sol.FnVal.Equal(ratio.FromInt64(2)))
}
