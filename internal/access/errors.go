package access

import "errors"

// Sentinel errors for registration.
var (
	// ErrNilElement is returned when registering a nil element.
	ErrNilElement = errors.New("element cannot be nil")

	// ErrDeadElement is returned when registering a destroyed element.
	ErrDeadElement = errors.New("element is no longer alive")
)
