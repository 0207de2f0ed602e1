package config

import "errors"

// Config loading and validation failures; callers match them with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config")
)
