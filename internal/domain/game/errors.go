package game

import "errors"

// Sentinel kinds for strategy guide parsing errors.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMalformedRound = errors.New("malformed round")
)
