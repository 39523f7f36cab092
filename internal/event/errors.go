package event

import "errors"

// Sentinel errors for the router.
var (
	// ErrNilHandler is returned when a nil handler is subscribed.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilElement is returned when a subscription names no element.
	ErrNilElement = errors.New("element cannot be nil")

	// ErrDeadElement is returned when subscribing on a destroyed element.
	ErrDeadElement = errors.New("element is no longer alive")

	// ErrNoSource is returned when an envelope has no source element.
	ErrNoSource = errors.New("envelope has no source element")

	// ErrInvalidType is returned when an envelope carries no event type.
	ErrInvalidType = errors.New("envelope has no event type")
)
