// Package bitvector provides BitVector, a width-tracked arbitrary-precision
// integer used as the unit of an infrared remote-control signal codec.
//
// # Width
//
// Every BitVector carries a width, the number of significant bits. Width is
// bookkeeping: it bounds iteration and selection and is what protocol code
// reads back, but it does not mask the value after construction. Masking
// happens only when a width is supplied explicitly and the value is
// non-negative:
//
//	bitvector.New(bitvector.Int(0b1_1010), bitvector.WithWidth(4)) // value 0b1010, width 4
//	bitvector.New(bitvector.Int(-3), bitvector.WithWidth(4))       // value -3, width 4
//
// Without an explicit width the width is the bit length of the value, with
// the bit length of zero taken as 1.
//
// # Operators
//
// Go has no operator overloading, so every operator is a method. Each
// operator family has its own width rule:
//
//	Pos Neg Abs                    width unchanged
//	Not Add Sub Mul FloorDiv Mod   width recomputed from the result
//	And Or Xor                     width recomputed from the result
//	RAnd ROr RXor                  max(width, operand width)
//	Lsh / Rsh                      width + n / width - n
//	RLsh / RRsh                    operand width + width / operand width - width
//	AddAssign                      bit length of the result
//	SubAssign                      min(width, bit length of the result)
//	MulAssign FloorDivAssign ModAssign  max(width, bit length of the result)
//	LshAssign / RshAssign          width + n / width - n
//	AndAssign OrAssign XorAssign   max(width, operand width)
//
// Non-assigning operators return a new BitVector and never alias the
// receiver. The *Assign methods mutate the receiver and return it.
// Rsh may drive the width to zero or below; this is not validated.
//
// # Selection
//
// Select extracts a range of bits described by a Range and optionally
// inverts it or compares it against a target. See Range for the supported
// shapes.
//
// # Timings
//
// A BitVector built with WithTimingTable converts its bits to a pulse train
// through Timings; see package timing. The table and encoding travel with
// every vector derived from it.
//
// BitVector is not safe for concurrent mutation.
package bitvector
