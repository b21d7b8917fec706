package irbits

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProfile is returned when a profile name is not registered.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrDuplicateProfile is returned when a profile name is registered twice.
	ErrDuplicateProfile = errors.New("duplicate profile")
)

// ErrInvalidProfile indicates a profile that cannot be used for encoding.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidProfile struct {
	Name  string
	cause error
}

func (e *ErrInvalidProfile) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("invalid profile %q", e.Name)
	}
	return fmt.Sprintf("invalid profile %q: %v", e.Name, e.cause)
}

func (e *ErrInvalidProfile) Unwrap() error { return e.cause }
