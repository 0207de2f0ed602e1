// Package config defines process configuration and its loading hooks.
//
// Conventions:
//   - New returns a Config holding the defaults.
//   - Load layers a YAML file and ADVENT_* environment variables on top.
//   - Errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output from text to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// DataDir holds the personal inputs as day-<N>/test.dat.
	DataDir string `koanf:"data_dir"`

	// ExampleDir overrides the embedded example inputs when set.
	ExampleDir string `koanf:"example_dir"`

	// VerifyExamples aborts a run when an example answer differs from the
	// published one.
	VerifyExamples bool `koanf:"verify_examples"`

	// Part restricts solving to part 1 or 2; 0 solves both.
	Part int `koanf:"part"`

	// MetricsFile, when set, receives the run's metrics in the Prometheus
	// text format on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		DataDir:        "data",
		VerifyExamples: true,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if c.Part < 0 || c.Part > 2 {
		return fmt.Errorf("%w: part must be 0, 1 or 2, got %d", ErrInvalidConfig, c.Part)
	}
	return nil
}
