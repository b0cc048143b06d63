package anim

import "errors"

// Validation errors. Failed setters leave the controller unchanged.
var (
	// ErrInvalidRange indicates SetRange bounds that are out of [0, 1]
	// or non-monotonic.
	ErrInvalidRange = errors.New("anim: range bounds must satisfy 0 <= start < end <= 1")

	// ErrOutOfRange indicates a Seek fraction outside [0, 1].
	ErrOutOfRange = errors.New("anim: seek fraction outside [0, 1]")
)
