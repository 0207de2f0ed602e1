package service

import (
	"errors"
	"fmt"

	"github.com/okian/advent/internal/domain/model"
)

// ErrExampleMismatch reports an example answer that differs from the
// published one.
var ErrExampleMismatch = errors.New("example answer mismatch")

// Stage names the step of a run that failed.
type Stage string

// Run stages.
const (
	StageLoad   Stage = "load"
	StageSolve  Stage = "solve"
	StageVerify Stage = "verify"
	StageOutput Stage = "output"
)

// StageError wraps a failure with the day, stage and dataset it happened in.
type StageError struct {
	Day   int
	Stage Stage
	Label model.Label
	Part  int
	Err   error
}

func (e *StageError) Error() string {
	switch {
	case e.Part != 0:
		return fmt.Sprintf("day %d: %s %s pt.%d: %v", e.Day, e.Stage, e.Label, e.Part, e.Err)
	case e.Label != "":
		return fmt.Sprintf("day %d: %s %s: %v", e.Day, e.Stage, e.Label, e.Err)
	default:
		return fmt.Sprintf("day %d: %s: %v", e.Day, e.Stage, e.Err)
	}
}

func (e *StageError) Unwrap() error { return e.Err }
