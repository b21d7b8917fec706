// Package timing converts bit sequences into infrared pulse trains.
//
// A Table maps a group of bits to a signed duration: positive values are
// mark (carrier on) time, negative values are space (carrier off) time. The
// table length selects how many bits form one group:
//
//	len(table) == 2   ->  1 bit per group
//	len(table) == 4   ->  2 bits per group
//	len(table) == 16  ->  4 bits per group
//
// Encode pads the bit sequence to a whole number of groups, looks up each
// group and merges adjacent durations of the same polarity into one pulse.
package timing
