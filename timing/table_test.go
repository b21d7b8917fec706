package timing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	for _, n := range []int{2, 4, 16} {
		tbl, err := NewTable(make([]int, n)...)
		require.NoError(t, err)
		assert.Len(t, tbl, n)
	}

	for _, n := range []int{0, 1, 3, 8, 17} {
		_, err := NewTable(make([]int, n)...)
		var tl *ErrInvalidTableLength
		require.ErrorAs(t, err, &tl)
		assert.Equal(t, n, tl.Length)
	}
}

func TestNewTableCopies(t *testing.T) {
	src := []int{1, -1}
	tbl, err := NewTable(src...)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1, tbl[0])
}

func TestGroupSize(t *testing.T) {
	assert.Equal(t, 1, MustTable(1, -1).GroupSize())
	assert.Equal(t, 2, MustTable(1, -1, 2, -2).GroupSize())
	assert.Equal(t, 4, MustTable(make([]int, 16)...).GroupSize())
}

func TestMustTablePanics(t *testing.T) {
	assert.Panics(t, func() { MustTable(1, 2, 3) })
}

func TestEncodingText(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, e := range []Encoding{LSBFirst, MSBFirst} {
			b, err := json.Marshal(e)
			require.NoError(t, err)

			var got Encoding
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, e, got)
		}
	})

	t.Run("short names", func(t *testing.T) {
		e, err := ParseEncoding("msb")
		require.NoError(t, err)
		assert.Equal(t, MSBFirst, e)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseEncoding("middle_out")
		assert.ErrorIs(t, err, ErrUnknownEncoding)

		_, err = Encoding(7).MarshalText()
		assert.ErrorIs(t, err, ErrUnknownEncoding)
		assert.Equal(t, "Encoding(7)", Encoding(7).String())
	})
}
