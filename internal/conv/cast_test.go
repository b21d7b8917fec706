//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint(0)
		assert.NoError(t, err)
		assert.Equal(t, uint(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint(17)
		assert.NoError(t, err)
		assert.Equal(t, uint(17), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint(-1)
		assert.Error(t, err)
	})
}

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxUint32, got)
}
