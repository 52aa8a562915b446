package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yevhenk/shiplp/ratio"
)

func TestZeroValueIsZero(t *testing.T) {
	var n Number
	assert.True(t, n.IsZero())
}

func TestOneBigCarriesM(t *testing.T) {
	n := OneBig()
	assert.False(t, n.IsZero())
	_, err := n.ToRational()
	assert.Error(t, err)
}

func TestFromRationalRoundTrips(t *testing.T) {
	n := FromRational(ratio.FromInt64(5))
	got, err := n.ToRational()
	require.NoError(t, err)
	assert.True(t, got.Equal(ratio.FromInt64(5)))
}

func TestMulDroppedCrossTerm(t *testing.T) {
	// (1*M + 2) * 3  ==  3*M + 6
	a := Number{Big: ratio.One(), Small: ratio.FromInt64(2)}
	b := FromRational(ratio.FromInt64(3))
	got := a.Mul(b)
	assert.True(t, got.Big.Equal(ratio.FromInt64(3)))
	assert.True(t, got.Small.Equal(ratio.FromInt64(6)))
}

func TestMulBothBigPanics(t *testing.T) {
	a := OneBig()
	b := OneBig()
	assert.Panics(t, func() { a.Mul(b) })
}

func TestCmpOrdersByBigFirst(t *testing.T) {
	small := FromRational(ratio.FromInt64(1_000_000))
	big := Number{Big: ratio.One(), Small: ratio.FromInt64(-1_000_000)}
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
}

func TestScaleRational(t *testing.T) {
	n := Number{Big: ratio.One(), Small: ratio.FromInt64(2)}
	got := n.ScaleRational(ratio.FromInt64(-1))
	assert.True(t, got.Big.Equal(ratio.FromInt64(-1)))
	assert.True(t, got.Small.Equal(ratio.FromInt64(-2)))
}
