package engine

import "errors"

var (
	// ErrInvalidPosition is returned when the rules layer reports malformed state.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrConfiguration is returned for unusable engine settings.
	ErrConfiguration = errors.New("invalid engine configuration")
)
