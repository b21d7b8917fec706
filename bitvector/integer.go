package bitvector

import (
	"fmt"
	"math/big"

	"github.com/hupe1980/irbits/internal/conv"
)

// Integer is an integer-like operand accepted by every BitVector operator.
//
// *BitVector implements Integer with its own width; Int and FromBig wrap raw
// integers whose width is their bit length.
type Integer interface {
	// BigInt returns the value as a *big.Int owned by the caller.
	BigInt() *big.Int
	// NumBits returns the operand width.
	NumBits() int
}

// Int is a machine-sized Integer.
type Int int64

// BigInt implements Integer.
func (i Int) BigInt() *big.Int { return big.NewInt(int64(i)) }

// NumBits implements Integer.
func (i Int) NumBits() int { return bitLength(big.NewInt(int64(i))) }

type bigInt struct {
	x *big.Int
}

// FromBig wraps x as an Integer. x is copied.
func FromBig(x *big.Int) Integer {
	return bigInt{x: new(big.Int).Set(x)}
}

func (b bigInt) BigInt() *big.Int { return new(big.Int).Set(b.x) }

func (b bigInt) NumBits() int { return bitLength(b.x) }

// bitLength is the number of bits needed for |x|, counting zero as one bit.
func bitLength(x *big.Int) int {
	if n := x.BitLen(); n > 0 {
		return n
	}
	return 1
}

// mask keeps the low width bits of a non-negative x. Negative values are
// returned unchanged.
func mask(x *big.Int, width int) *big.Int {
	if x.Sign() < 0 {
		return x
	}
	if width <= 0 {
		return x.SetInt64(0)
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	m.Sub(m, big.NewInt(1))
	return x.And(x, m)
}

// smallUint converts an operand used as a shift count or bit position.
func smallUint(x Integer, negErr error) (uint, error) {
	b := x.BigInt()
	if !b.IsInt64() || int64(int(b.Int64())) != b.Int64() {
		return 0, fmt.Errorf("%w: %s", ErrOperandTooLarge, b)
	}
	n, err := conv.IntToUint(int(b.Int64()))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", negErr, err)
	}
	return n, nil
}
