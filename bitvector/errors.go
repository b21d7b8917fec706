package bitvector

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTimingTable is returned by Timings when no timing table was configured.
	ErrNoTimingTable = errors.New("no timing table configured")

	// ErrDivisionByZero is returned by floor division and modulo with a zero divisor.
	ErrDivisionByZero = errors.New("integer division or modulo by zero")

	// ErrNegativeShift is returned when a shift count is negative.
	ErrNegativeShift = errors.New("negative shift count")

	// ErrNegativeIndex is returned when a bit index or write offset is negative.
	ErrNegativeIndex = errors.New("negative bit index")

	// ErrOperandTooLarge is returned when a shift count or bit index does not fit in an int.
	ErrOperandTooLarge = errors.New("operand too large")

	// ErrOverflow is returned by Int64 when the value does not fit in an int64.
	ErrOverflow = errors.New("value overflows int64")
)

// ErrInvalidSelector indicates a Range whose stop/step combination matches
// none of the supported extraction shapes.
type ErrInvalidSelector struct {
	Stop, Step       int
	HasStop, HasStep bool
}

func (e *ErrInvalidSelector) Error() string {
	return fmt.Sprintf("invalid selector: stop=%s step=%s", optional(e.Stop, e.HasStop), optional(e.Step, e.HasStep))
}

func optional(v int, ok bool) string {
	if !ok {
		return "<none>"
	}
	return fmt.Sprintf("%d", v)
}
