package service

import (
	"github.com/okian/advent/internal/domain/calories"
	"github.com/okian/advent/internal/domain/game"
	"github.com/okian/advent/internal/domain/puzzle"
	"github.com/okian/advent/internal/domain/rucksack"
)

// DefaultRegistry returns a registry holding every built-in solver.
func DefaultRegistry() *puzzle.Registry {
	return puzzle.NewRegistry(
		calories.Solver{},
		game.Solver{},
		rucksack.Solver{},
	)
}
