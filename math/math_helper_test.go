package math_test

import (
	stdmath "math"
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/math"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func TestIntegerSquareRoot(t *testing.T) {
	tt := []struct {
		number uint64
		root   uint64
	}{
		{number: 0, root: 0},
		{number: 1, root: 1},
		{number: 3, root: 1},
		{number: 4, root: 2},
		{number: 20, root: 4},
		{number: 200, root: 14},
		{number: 1987, root: 44},
		{number: 34989843, root: 5915},
		{number: 97282, root: 311},
		{number: 32 * 1e9 * 16384, root: 22897336},
		{number: 1<<64 - 1, root: 4294967295},
		{number: 1 << 62, root: 1 << 31},
	}

	for _, testVals := range tt {
		assert.Equal(t, testVals.root, math.IntegerSquareRoot(testVals.number), "Incorrect root for %d", testVals.number)
	}
}

func TestIntegerSquareRoot_IsFloor(t *testing.T) {
	for _, n := range []uint64{2, 15, 16, 17, 99, 1e9, 1e12 + 7, 123456789012345} {
		r := math.IntegerSquareRoot(n)
		assert.Equal(t, true, r*r <= n, "root too large for %d", n)
		assert.Equal(t, true, (r+1)*(r+1) > n, "root too small for %d", n)
	}
}

func TestAdd64(t *testing.T) {
	res, err := math.Add64(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res)

	_, err = math.Add64(stdmath.MaxUint64, 1)
	assert.ErrorIs(t, err, math.ErrAddOverflow)
}

func TestSub64(t *testing.T) {
	res, err := math.Sub64(5, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res)

	_, err = math.Sub64(2, 5)
	assert.ErrorIs(t, err, math.ErrSubUnderflow)
}

func TestMul64(t *testing.T) {
	res, err := math.Mul64(1<<32, 1<<31)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), res)

	_, err = math.Mul64(1<<32, 1<<32)
	assert.ErrorIs(t, err, math.ErrMulOverflow)
}

func TestDiv64(t *testing.T) {
	res, err := math.Div64(875, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(109), res)

	_, err = math.Div64(1, 0)
	assert.ErrorIs(t, err, math.ErrDivByZero)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint64(0), math.SaturatingSub(3, 10))
	assert.Equal(t, uint64(7), math.SaturatingSub(10, 3))
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint64(10), math.Max(3, 10))
	assert.Equal(t, uint64(10), math.Max(10, 3))
}
