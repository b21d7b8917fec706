package timing

import "slices"

// Encode converts bits, given least-significant bit first, into a pulse train.
//
// With MSBFirst the sequence is reversed before grouping and padded at the
// front; with LSBFirst it is padded at the end. Within each group the first
// bit is the most-significant bit of the table index.
func Encode(lsbFirst []int, table Table, enc Encoding) ([]int, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	seq := slices.Clone(lsbFirst)
	if enc == MSBFirst {
		slices.Reverse(seq)
	}

	seq = pad(seq, table.GroupSize(), enc)

	size := table.GroupSize()
	durations := make([]int, 0, len(seq)/size)
	for i := 0; i < len(seq); i += size {
		idx := 0
		for _, b := range seq[i : i+size] {
			idx = idx<<1 | (b & 1)
		}
		durations = append(durations, table[idx])
	}

	return Coalesce(durations), nil
}

// pad extends seq with zero bits until its length is a multiple of size.
func pad(seq []int, size int, enc Encoding) []int {
	n := (size - len(seq)%size) % size
	if n == 0 {
		return seq
	}
	zeros := make([]int, n)
	if enc == MSBFirst {
		return append(zeros, seq...)
	}
	return append(seq, zeros...)
}

// Coalesce merges runs of adjacent durations that share a sign into a single
// summed duration. Zero durations never merge with their neighbours.
func Coalesce(durations []int) []int {
	out := make([]int, 0, len(durations))
	for _, d := range durations {
		if n := len(out); n > 0 && sameSign(out[n-1], d) {
			out[n-1] += d
			continue
		}
		out = append(out, d)
	}
	return out
}

func sameSign(a, b int) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
