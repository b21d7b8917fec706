package bitvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubAssign(t *testing.T) {
	t.Run("add uses bit length", func(t *testing.T) {
		v := New(Int(1), WithWidth(8))
		got := v.AddAssign(Int(1))

		assert.Same(t, v, got)
		requireVec(t, v, 2, 2)
	})

	t.Run("sub only shrinks", func(t *testing.T) {
		requireVec(t, New(Int(8), WithWidth(8)).SubAssign(Int(1)), 7, 3)
		requireVec(t, New(Int(1), WithWidth(1)).SubAssign(Int(-100)), 101, 1)
	})

	t.Run("self operand", func(t *testing.T) {
		v := New(Int(3))
		v.AddAssign(v)
		requireVec(t, v, 6, 3)
	})
}

func TestMulDivModAssign(t *testing.T) {
	requireVec(t, New(Int(3), WithWidth(8)).MulAssign(Int(2)), 6, 8)
	requireVec(t, New(Int(3)).MulAssign(Int(100)), 300, 9)

	v, err := New(Int(100)).FloorDivAssign(Int(10))
	require.NoError(t, err)
	requireVec(t, v, 10, 7)

	v, err = New(Int(100)).ModAssign(Int(7))
	require.NoError(t, err)
	requireVec(t, v, 2, 7)

	t.Run("division by zero leaves the vector unchanged", func(t *testing.T) {
		v := New(Int(9), WithWidth(5))

		_, err := v.FloorDivAssign(Int(0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
		_, err = v.ModAssign(Int(0))
		assert.ErrorIs(t, err, ErrDivisionByZero)

		requireVec(t, v, 9, 5)
	})
}

func TestShiftAssign(t *testing.T) {
	v := New(Int(1), WithWidth(4))

	got, err := v.LshAssign(Int(3))
	require.NoError(t, err)
	assert.Same(t, v, got)
	requireVec(t, v, 8, 7)

	_, err = v.RshAssign(Int(10))
	require.NoError(t, err)
	requireVec(t, v, 0, -3)

	_, err = v.LshAssign(Int(-2))
	assert.ErrorIs(t, err, ErrNegativeShift)
	requireVec(t, v, 0, -3)
}

func TestBitwiseAssign(t *testing.T) {
	requireVec(t, New(Int(0b1111), WithWidth(4)).AndAssign(New(Int(0b11), WithWidth(12))), 0b11, 12)
	requireVec(t, New(Int(1)).OrAssign(Int(0b100000)), 0b100001, 6)
	requireVec(t, New(Int(0b1010), WithWidth(8)).XorAssign(Int(0b1)), 0b1011, 8)

	t.Run("self operand", func(t *testing.T) {
		v := New(Int(0b1010), WithWidth(6))
		v.XorAssign(v)
		requireVec(t, v, 0, 6)
	})
}
