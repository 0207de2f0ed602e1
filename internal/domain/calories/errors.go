package calories

import "errors"

// Sentinel kinds for calorie list parsing errors.
var (
	ErrEmptyInput    = errors.New("empty calorie list")
	ErrEmptyGroup    = errors.New("empty calorie group")
	ErrInvalidNumber = errors.New("invalid calorie count")
)
