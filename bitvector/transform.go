package bitvector

import (
	"fmt"
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/irbits/internal/conv"
)

// Invert complements each of the width low bits of v.
func (v *BitVector) Invert() *BitVector {
	return v.InvertN(v.width)
}

// InvertN complements each of the n low bits of v and returns an n-bit
// vector.
func (v *BitVector) InvertN(n int) *BitVector {
	out := new(big.Int)
	for i := 0; i < n; i++ {
		if v.value.Bit(i) == 0 {
			out.SetBit(out, i, 1)
		}
	}
	return v.derive(out, n)
}

// Reverse reverses the order of the width low bits of v.
func (v *BitVector) Reverse() *BitVector {
	return v.ReverseN(v.width)
}

// ReverseN moves bit i of v to bit n-1-i and returns an n-bit vector.
func (v *BitVector) ReverseN(n int) *BitVector {
	out := new(big.Int)
	for i := 0; i < n; i++ {
		if v.value.Bit(i) == 1 {
			out.SetBit(out, n-1-i, 1)
		}
	}
	return v.derive(out, n)
}

// Positions returns the positions of the set bits among the width bits of v.
func (v *BitVector) Positions() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := 0; i < v.width; i++ {
		if v.value.Bit(i) == 0 {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		rb.Add(pos)
	}
	return rb, nil
}

// FromPositions builds a vector with a bit set at every position in rb.
// Without WithWidth the width is the bit length of the result.
func FromPositions(rb *roaring.Bitmap, optFns ...Option) (*BitVector, error) {
	x := new(big.Int)
	it := rb.Iterator()
	for it.HasNext() {
		pos, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, fmt.Errorf("bit position: %w", err)
		}
		x.SetBit(x, pos, 1)
	}
	return New(FromBig(x), optFns...), nil
}
