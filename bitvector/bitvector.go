package bitvector

import (
	"iter"
	"math/big"
	"slices"

	"github.com/hupe1980/irbits/timing"
)

// BitVector is a width-tracked arbitrary-precision signed integer.
//
// The zero value is not usable; construct with New.
type BitVector struct {
	value    *big.Int
	width    int
	table    timing.Table
	encoding timing.Encoding
}

// New wraps value.
//
// If value is a *BitVector its value, width, timing table and encoding are
// copied; otherwise the width is the bit length of value (1 for zero).
// WithWidth re-applies the masking rule to the resulting value.
func New(value Integer, optFns ...Option) *BitVector {
	v := &BitVector{}
	if src, ok := value.(*BitVector); ok {
		v.value = new(big.Int).Set(src.value)
		v.width = src.width
		v.table = src.table
		v.encoding = src.encoding
	} else {
		v.value = value.BigInt()
		v.width = bitLength(v.value)
	}

	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	if o.hasTable {
		v.table = o.table
	}
	if o.hasEncoding {
		v.encoding = o.encoding
	}
	if o.hasWidth {
		v.value = mask(v.value, o.width)
		v.width = o.width
	}
	return v
}

// FromInt64 is shorthand for New(Int(x), optFns...).
func FromInt64(x int64, optFns ...Option) *BitVector {
	return New(Int(x), optFns...)
}

// derive builds a vector with an explicit width that shares the receiver's
// timing table and encoding. x is taken over.
func (v *BitVector) derive(x *big.Int, width int) *BitVector {
	return &BitVector{
		value:    mask(x, width),
		width:    width,
		table:    v.table,
		encoding: v.encoding,
	}
}

// fresh is like derive but computes the width from x.
func (v *BitVector) fresh(x *big.Int) *BitVector {
	return &BitVector{
		value:    x,
		width:    bitLength(x),
		table:    v.table,
		encoding: v.encoding,
	}
}

// Clone returns a copy of v.
func (v *BitVector) Clone() *BitVector {
	return New(v)
}

// BigInt implements Integer. The returned value is a copy.
func (v *BitVector) BigInt() *big.Int {
	return new(big.Int).Set(v.value)
}

// NumBits returns the width. It implements Integer.
func (v *BitVector) NumBits() int {
	return v.width
}

// TimingTable returns a copy of the configured timing table, or nil.
func (v *BitVector) TimingTable() timing.Table {
	return v.table.Clone()
}

// Encoding returns the configured encoding.
func (v *BitVector) Encoding() timing.Encoding {
	return v.encoding
}

// All yields the width bits of v, least-significant first.
// Negative values are read in two's complement.
func (v *BitVector) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < v.width; i++ {
			if !yield(int(v.value.Bit(i))) {
				return
			}
		}
	}
}

// Bits returns the width bits of v, most-significant first.
func (v *BitVector) Bits() []int {
	bits := slices.Collect(v.All())
	slices.Reverse(bits)
	return bits
}

// NumOneBits returns the number of set bits among the width bits of v.
func (v *BitVector) NumOneBits() *BitVector {
	n := 0
	for b := range v.All() {
		n += b
	}
	return v.fresh(big.NewInt(int64(n)))
}

// Timings converts the bits of v to a pulse train using the configured
// timing table and encoding. It fails with ErrNoTimingTable if no table
// was set.
func (v *BitVector) Timings() ([]int, error) {
	if v.table == nil {
		return nil, ErrNoTimingTable
	}
	return timing.Encode(slices.Collect(v.All()), v.table, v.encoding)
}
