package timing

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownEncoding is returned when an encoding name cannot be parsed.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrInvalidTableLength indicates a timing table whose length is not 2, 4 or 16.
type ErrInvalidTableLength struct {
	Length int
}

func (e *ErrInvalidTableLength) Error() string {
	return fmt.Sprintf("invalid timing table length: %d (want 2, 4 or 16)", e.Length)
}

// Encoding selects the direction in which bits are grouped.
type Encoding uint8

const (
	// LSBFirst groups bits starting at the least-significant bit.
	LSBFirst Encoding = iota
	// MSBFirst groups bits starting at the most-significant bit.
	MSBFirst
)

// ParseEncoding parses "lsb_first" or "msb_first".
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "lsb_first", "lsb":
		return LSBFirst, nil
	case "msb_first", "msb":
		return MSBFirst, nil
	default:
		return LSBFirst, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

func (e Encoding) String() string {
	switch e {
	case LSBFirst:
		return "lsb_first"
	case MSBFirst:
		return "msb_first"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if e != LSBFirst && e != MSBFirst {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	v, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Table is an ordered list of signed durations indexed by a bit group value.
type Table []int

// NewTable validates the length of durations and returns them as a Table.
// The slice is copied.
func NewTable(durations ...int) (Table, error) {
	t := Table(slices.Clone(durations))
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is like NewTable but panics on an invalid length.
func MustTable(durations ...int) Table {
	t, err := NewTable(durations...)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate reports whether the table has one of the supported lengths.
func (t Table) Validate() error {
	switch len(t) {
	case 2, 4, 16:
		return nil
	default:
		return &ErrInvalidTableLength{Length: len(t)}
	}
}

// GroupSize returns the number of bits looked up per table entry.
func (t Table) GroupSize() int {
	switch len(t) {
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 4
	}
}

// Clone returns a copy of the table. A nil table stays nil.
func (t Table) Clone() Table {
	return slices.Clone(t)
}
