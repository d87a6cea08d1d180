package ethevent

import "errors"

var (
	// ErrMalformedLogEncoding is returned when the log entry bytes aren't a valid RLP log
	ErrMalformedLogEncoding = errors.New("malformed log entry encoding")
	// ErrEventShapeMismatch is returned when the log doesn't match the expected event layout
	ErrEventShapeMismatch = errors.New("log entry doesn't match the expected event shape")
	// ErrInvalidEventSpec is returned when an EventSpec can't be turned into an ABI event
	ErrInvalidEventSpec = errors.New("invalid event spec")
	// ErrFieldNotFound is returned when asking an event for a field it doesn't have
	ErrFieldNotFound = errors.New("field not found on event")
	// ErrValueOverflow is returned when a decoded integer doesn't fit the requested width
	ErrValueOverflow = errors.New("value overflows the requested width")
)
