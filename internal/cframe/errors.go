package cframe

import (
	"errors"
	"fmt"
)

// Decode and lookup errors.
var (
	// ErrTooShort indicates a buffer smaller than the 8-byte header.
	ErrTooShort = errors.New("cframe: buffer too short for header")

	// ErrSizeMismatch indicates a payload that does not match the
	// dimensions declared in the header.
	ErrSizeMismatch = errors.New("cframe: payload size does not match header dimensions")

	// ErrIndexOutOfBounds indicates a cell lookup outside the grid.
	ErrIndexOutOfBounds = errors.New("cframe: cell index out of bounds")
)

// DecodeError wraps a decode failure with the observed byte counts.
type DecodeError struct {
	Expected int
	Actual   int
	Wrapped  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (expected %d bytes, got %d)", e.Wrapped, e.Expected, e.Actual)
}

func (e *DecodeError) Unwrap() error {
	return e.Wrapped
}
