package puzzle

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrUnknownDay = errors.New("unknown day")
	ErrInvalidDay = errors.New("invalid day")
)
