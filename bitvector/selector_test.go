package bitvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	v := New(Int(0b110110), WithWidth(6))

	tests := []struct {
		name      string
		src       *BitVector
		r         Range
		wantValue int64
		wantWidth int
	}{
		{"low bits", New(Int(0b1010), WithWidth(4)), Upto(2), 0b10, 2},
		{"low bits reversed", New(Int(0b1100), WithWidth(4)), Upto(-4), 0b0011, 4},
		{"low bits reversed with negative step", New(Int(0b1100), WithWidth(4)), Span(-4, -1), 0b0011, 4},
		{"span is inclusive", v, Span(2, 1), 0b011, 3},
		{"span of a single bit", v, Span(0, 2), 1, 1},
		{"span reversed", v, Span(-3, 1), 0b110, 3},
		{"from offset", v, From(2), 0b1101, 4},
		{"zero step counts as unset", v, Span(2, 0), 0b10, 2},
		{"zero step without stop is whole", v, From(0), 0b110110, 6},
		{"whole", v, Whole(), 0b110110, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.src.Slice(tt.r)
			require.NoError(t, err)
			requireVec(t, got, tt.wantValue, tt.wantWidth)
		})
	}

	t.Run("whole is a copy", func(t *testing.T) {
		got, err := v.Slice(Whole())
		require.NoError(t, err)
		assert.NotSame(t, v, got)
	})
}

func TestSliceInvalid(t *testing.T) {
	v := New(Int(0b1010), WithWidth(4))

	for _, r := range []Range{Upto(0), From(-1), Span(3, -1), Span(0, -2)} {
		_, err := v.Slice(r)

		var sel *ErrInvalidSelector
		require.ErrorAs(t, err, &sel)

		stop, hasStop := r.Stop()
		step, hasStep := r.Step()
		assert.Equal(t, ErrInvalidSelector{Stop: stop, Step: step, HasStop: hasStop, HasStep: hasStep}, *sel)
	}

	_, err := v.Matches(Upto(0), Int(1))
	assert.Error(t, err)
}

func TestSelectPostProcessing(t *testing.T) {
	v := New(Int(0b1010), WithWidth(4))

	t.Run("invert", func(t *testing.T) {
		got, err := v.SliceInverted(Upto(2))
		require.NoError(t, err)
		requireVec(t, got, 0b01, 2)

		got, err = v.SliceInverted(Whole())
		require.NoError(t, err)
		requireVec(t, got, 0b0101, 4)
	})

	t.Run("compare", func(t *testing.T) {
		ok, err := v.Matches(Upto(2), Int(0b10))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = v.Matches(Upto(2), Int(0b11))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("negative target compares the complement", func(t *testing.T) {
		ok, err := v.Matches(Upto(2), Int(-3))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = v.Matches(Upto(2), Int(-2))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("select returns a selection", func(t *testing.T) {
		s, err := v.Select(ExtractAndCompare{Range: From(1), Target: New(Int(0b101))})
		require.NoError(t, err)
		assert.Nil(t, s.Vector)
		assert.True(t, s.Match)

		s, err = v.Select(&Extract{Range: Upto(-4)})
		require.NoError(t, err)
		requireVec(t, s.Vector, 0b0101, 4)
	})
}

func TestBit(t *testing.T) {
	v := New(Int(0b1010))

	for i, want := range []int{0, 1, 0, 1, 0, 0} {
		got, err := v.Bit(Int(int64(i)))
		require.NoError(t, err)
		assert.Equal(t, want, got, "bit %d", i)
	}

	got, err := v.Bit(New(Int(3), WithWidth(8)))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = New(Int(-1)).Bit(Int(100))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = v.Bit(Int(-1))
	assert.ErrorIs(t, err, ErrNegativeIndex)
}

func TestSetAt(t *testing.T) {
	v := New(Int(0b1), WithWidth(4))

	got, err := v.SetAt(Int(4), Int(0b11))
	require.NoError(t, err)
	assert.Same(t, v, got)
	requireVec(t, v, 0b110001, 6)

	_, err = v.SetAt(Int(1), Int(1))
	require.NoError(t, err)
	requireVec(t, v, 0b110011, 6)

	_, err = v.SetAt(Int(-1), Int(1))
	assert.ErrorIs(t, err, ErrNegativeIndex)
}
