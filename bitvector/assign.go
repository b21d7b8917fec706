package bitvector

import "math/big"

// AddAssign sets v to v + x and its width to the bit length of the result.
func (v *BitVector) AddAssign(x Integer) *BitVector {
	v.value.Add(v.value, x.BigInt())
	v.width = bitLength(v.value)
	return v
}

// SubAssign sets v to v - x. The width only shrinks, to the bit length of
// the result.
func (v *BitVector) SubAssign(x Integer) *BitVector {
	v.value.Sub(v.value, x.BigInt())
	v.width = min(v.width, bitLength(v.value))
	return v
}

// MulAssign sets v to v * x. The width only grows.
func (v *BitVector) MulAssign(x Integer) *BitVector {
	v.value.Mul(v.value, x.BigInt())
	v.width = max(v.width, bitLength(v.value))
	return v
}

// FloorDivAssign sets v to the floored quotient v / x. The width only grows.
// On error v is unchanged.
func (v *BitVector) FloorDivAssign(x Integer) (*BitVector, error) {
	q, _, err := floorDivMod(v.value, x.BigInt())
	if err != nil {
		return v, err
	}
	v.value = q
	v.width = max(v.width, bitLength(v.value))
	return v, nil
}

// ModAssign sets v to v mod x. The width only grows. On error v is unchanged.
func (v *BitVector) ModAssign(x Integer) (*BitVector, error) {
	_, m, err := floorDivMod(v.value, x.BigInt())
	if err != nil {
		return v, err
	}
	v.value = m
	v.width = max(v.width, bitLength(v.value))
	return v, nil
}

// LshAssign shifts v left by n and adds n to its width.
func (v *BitVector) LshAssign(n Integer) (*BitVector, error) {
	c, err := smallUint(n, ErrNegativeShift)
	if err != nil {
		return v, err
	}
	v.value.Lsh(v.value, c)
	v.width += int(c)
	return v, nil
}

// RshAssign shifts v right by n and subtracts n from its width.
func (v *BitVector) RshAssign(n Integer) (*BitVector, error) {
	c, err := smallUint(n, ErrNegativeShift)
	if err != nil {
		return v, err
	}
	v.value.Rsh(v.value, c)
	v.width -= int(c)
	return v, nil
}

// AndAssign sets v to v & x and its width to max(width, x.NumBits()).
func (v *BitVector) AndAssign(x Integer) *BitVector {
	return v.bitwiseAssign((*big.Int).And, x)
}

// OrAssign sets v to v | x and its width to max(width, x.NumBits()).
func (v *BitVector) OrAssign(x Integer) *BitVector {
	return v.bitwiseAssign((*big.Int).Or, x)
}

// XorAssign sets v to v ^ x and its width to max(width, x.NumBits()).
func (v *BitVector) XorAssign(x Integer) *BitVector {
	return v.bitwiseAssign((*big.Int).Xor, x)
}

func (v *BitVector) bitwiseAssign(op func(z, x, y *big.Int) *big.Int, x Integer) *BitVector {
	width := x.NumBits()
	op(v.value, v.value, x.BigInt())
	v.width = max(v.width, width)
	return v
}
