package bitvector

import (
	"fmt"
	"math/big"
)

// Int returns a copy of the value.
func (v *BitVector) Int() *big.Int {
	return v.BigInt()
}

// Int64 returns the value as an int64, or ErrOverflow if it does not fit.
func (v *BitVector) Int64() (int64, error) {
	if !v.value.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, v.value)
	}
	return v.value.Int64(), nil
}

// String returns the value in decimal.
func (v *BitVector) String() string {
	return v.value.String()
}

// Format implements fmt.Formatter with the verbs of *big.Int
// ('b', 'o', 'O', 'd', 'x', 'X', 's', 'v').
func (v *BitVector) Format(s fmt.State, ch rune) {
	v.value.Format(s, ch)
}

// Hex returns the value in lowercase hexadecimal with a 0x prefix, e.g.
// "0x1f" or "-0x5".
func (v *BitVector) Hex() string {
	if v.value.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(v.value).Text(16)
	}
	return "0x" + v.value.Text(16)
}

// Bool reports whether the width is non-zero.
func (v *BitVector) Bool() bool {
	return v.width != 0
}

// Cmp compares the value of v with x and returns -1, 0 or +1.
func (v *BitVector) Cmp(x Integer) int {
	return v.value.Cmp(x.BigInt())
}

// Equal reports whether v and x have the same value. Width is ignored.
func (v *BitVector) Equal(x Integer) bool { return v.Cmp(x) == 0 }

// Less reports whether v < x.
func (v *BitVector) Less(x Integer) bool { return v.Cmp(x) < 0 }

// LessOrEqual reports whether v <= x.
func (v *BitVector) LessOrEqual(x Integer) bool { return v.Cmp(x) <= 0 }

// Greater reports whether v > x.
func (v *BitVector) Greater(x Integer) bool { return v.Cmp(x) > 0 }

// GreaterOrEqual reports whether v >= x.
func (v *BitVector) GreaterOrEqual(x Integer) bool { return v.Cmp(x) >= 0 }
