package irbits

import (
	"errors"

	"github.com/hupe1980/irbits/bitvector"
	"github.com/hupe1980/irbits/timing"
)

// Profile is the timing context of one remote-control protocol.
type Profile struct {
	// Name identifies the profile in a Registry.
	Name string `json:"name"`
	// Timings maps bit groups to signed durations in microseconds.
	Timings timing.Table `json:"timings"`
	// Encoding selects the bit grouping direction. Defaults to lsb_first.
	Encoding timing.Encoding `json:"encoding"`
	// Width is the frame width in bits. Zero means the bit length of the value.
	Width int `json:"width,omitempty"`
}

// Validate reports whether the profile can be used for encoding.
func (p Profile) Validate() error {
	if p.Name == "" {
		return &ErrInvalidProfile{Name: p.Name, cause: errors.New("empty name")}
	}
	if p.Width < 0 {
		return &ErrInvalidProfile{Name: p.Name, cause: errors.New("negative width")}
	}
	if err := p.Timings.Validate(); err != nil {
		return &ErrInvalidProfile{Name: p.Name, cause: err}
	}
	return nil
}

// Frame wraps value in a BitVector carrying the profile's timing context.
func (p Profile) Frame(value bitvector.Integer) *bitvector.BitVector {
	opts := []bitvector.Option{
		bitvector.WithTimingTable(p.Timings),
		bitvector.WithEncoding(p.Encoding),
	}
	if p.Width > 0 {
		opts = append(opts, bitvector.WithWidth(p.Width))
	}
	return bitvector.New(value, opts...)
}

// Encode frames value and returns its pulse train.
func (p Profile) Encode(value bitvector.Integer) ([]int, error) {
	return p.Frame(value).Timings()
}
