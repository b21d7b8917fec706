package bitvector

import "math/big"

// Pos returns a copy of v.
func (v *BitVector) Pos() *BitVector {
	return v.derive(new(big.Int).Set(v.value), v.width)
}

// Neg returns -v with the width of v.
func (v *BitVector) Neg() *BitVector {
	return v.derive(new(big.Int).Neg(v.value), v.width)
}

// Abs returns |v| with the width of v.
func (v *BitVector) Abs() *BitVector {
	return v.derive(new(big.Int).Abs(v.value), v.width)
}

// Not returns the bitwise complement -v-1. The width is recomputed.
func (v *BitVector) Not() *BitVector {
	return v.fresh(new(big.Int).Not(v.value))
}

// Add returns v + x.
func (v *BitVector) Add(x Integer) *BitVector {
	return v.fresh(new(big.Int).Add(v.value, x.BigInt()))
}

// Sub returns v - x.
func (v *BitVector) Sub(x Integer) *BitVector {
	return v.fresh(new(big.Int).Sub(v.value, x.BigInt()))
}

// RSub returns x - v.
func (v *BitVector) RSub(x Integer) *BitVector {
	return v.fresh(new(big.Int).Sub(x.BigInt(), v.value))
}

// Mul returns v * x.
func (v *BitVector) Mul(x Integer) *BitVector {
	return v.fresh(new(big.Int).Mul(v.value, x.BigInt()))
}

// FloorDiv returns v / x rounded towards negative infinity.
func (v *BitVector) FloorDiv(x Integer) (*BitVector, error) {
	q, _, err := floorDivMod(v.value, x.BigInt())
	if err != nil {
		return nil, err
	}
	return v.fresh(q), nil
}

// RFloorDiv returns x / v rounded towards negative infinity.
func (v *BitVector) RFloorDiv(x Integer) (*BitVector, error) {
	q, _, err := floorDivMod(x.BigInt(), v.value)
	if err != nil {
		return nil, err
	}
	return v.fresh(q), nil
}

// Mod returns v mod x. The result has the sign of x.
func (v *BitVector) Mod(x Integer) (*BitVector, error) {
	_, m, err := floorDivMod(v.value, x.BigInt())
	if err != nil {
		return nil, err
	}
	return v.fresh(m), nil
}

// RMod returns x mod v. The result has the sign of v.
func (v *BitVector) RMod(x Integer) (*BitVector, error) {
	_, m, err := floorDivMod(x.BigInt(), v.value)
	if err != nil {
		return nil, err
	}
	return v.fresh(m), nil
}

// Lsh returns v << n with width increased by n.
func (v *BitVector) Lsh(n Integer) (*BitVector, error) {
	c, err := smallUint(n, ErrNegativeShift)
	if err != nil {
		return nil, err
	}
	return v.derive(new(big.Int).Lsh(v.value, c), v.width+int(c)), nil
}

// Rsh returns v >> n with width decreased by n. The width may become zero
// or negative.
func (v *BitVector) Rsh(n Integer) (*BitVector, error) {
	c, err := smallUint(n, ErrNegativeShift)
	if err != nil {
		return nil, err
	}
	return v.derive(new(big.Int).Rsh(v.value, c), v.width-int(c)), nil
}

// RLsh returns x << v with width x.NumBits() + v.NumBits().
func (v *BitVector) RLsh(x Integer) (*BitVector, error) {
	c, err := smallUint(v, ErrNegativeShift)
	if err != nil {
		return nil, err
	}
	return v.derive(new(big.Int).Lsh(x.BigInt(), c), x.NumBits()+v.width), nil
}

// RRsh returns x >> v with width x.NumBits() - v.NumBits().
func (v *BitVector) RRsh(x Integer) (*BitVector, error) {
	c, err := smallUint(v, ErrNegativeShift)
	if err != nil {
		return nil, err
	}
	return v.derive(new(big.Int).Rsh(x.BigInt(), c), x.NumBits()-v.width), nil
}

// And returns v & x. The width is recomputed.
func (v *BitVector) And(x Integer) *BitVector {
	return v.fresh(new(big.Int).And(v.value, x.BigInt()))
}

// Or returns v | x. The width is recomputed.
func (v *BitVector) Or(x Integer) *BitVector {
	return v.fresh(new(big.Int).Or(v.value, x.BigInt()))
}

// Xor returns v ^ x. The width is recomputed.
func (v *BitVector) Xor(x Integer) *BitVector {
	return v.fresh(new(big.Int).Xor(v.value, x.BigInt()))
}

// RAnd returns x & v with width max(v.NumBits(), x.NumBits()).
func (v *BitVector) RAnd(x Integer) *BitVector {
	return v.derive(new(big.Int).And(x.BigInt(), v.value), max(v.width, x.NumBits()))
}

// ROr returns x | v with width max(v.NumBits(), x.NumBits()).
func (v *BitVector) ROr(x Integer) *BitVector {
	return v.derive(new(big.Int).Or(x.BigInt(), v.value), max(v.width, x.NumBits()))
}

// RXor returns x ^ v with width max(v.NumBits(), x.NumBits()).
func (v *BitVector) RXor(x Integer) *BitVector {
	return v.derive(new(big.Int).Xor(x.BigInt(), v.value), max(v.width, x.NumBits()))
}

// floorDivMod returns the floored quotient and modulus of x and y.
func floorDivMod(x, y *big.Int) (*big.Int, *big.Int, error) {
	if y.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q, m := new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}
	return q, m, nil
}
