package bitvector_test

import (
	"fmt"

	"github.com/hupe1980/irbits/bitvector"
	"github.com/hupe1980/irbits/timing"
)

func ExampleNew() {
	v := bitvector.New(bitvector.Int(0b1011), bitvector.WithWidth(4))

	fmt.Println(v.Bits(), v.NumOneBits())

	shifted, _ := v.Lsh(bitvector.Int(2))
	fmt.Println(shifted, shifted.NumBits())
	// Output:
	// [1 0 1 1] 3
	// 44 6
}

func ExampleBitVector_Select() {
	v := bitvector.New(bitvector.Int(0b1100), bitvector.WithWidth(4))

	rev, _ := v.Select(bitvector.Extract{Range: bitvector.Upto(-4)})
	fmt.Printf("%04b\n", rev.Vector.Int())

	eq, _ := v.Select(bitvector.ExtractAndCompare{Range: bitvector.From(2), Target: bitvector.Int(0b11)})
	fmt.Println(eq.Match)
	// Output:
	// 0011
	// true
}

func ExampleBitVector_Timings() {
	v := bitvector.New(bitvector.Int(0b0101), bitvector.WithWidth(4),
		bitvector.WithTimingTable(timing.MustTable(5, -5)),
	)

	pulses, _ := v.Timings()
	fmt.Println(pulses)
	// Output: [-5 5 -5 5]
}
