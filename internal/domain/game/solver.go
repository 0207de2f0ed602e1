package game

import "github.com/okian/advent/internal/domain/puzzle"

// Solver scores a rock-paper-scissors strategy guide.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 2 }
func (Solver) Title() string { return "Rock Paper Scissors" }

// Part1 scores the guide reading the second column as your move.
func (Solver) Part1(text string) (int, error) {
	return score(text, ByMove)
}

// Part2 scores the guide reading the second column as the desired outcome.
func (Solver) Part2(text string) (int, error) {
	return score(text, ByOutcome)
}

func (Solver) Example() (puzzle.Expected, bool) {
	return puzzle.Expected{Part1: 15, Part2: 12}, true
}

func score(text string, s Strategy) (int, error) {
	rounds, err := ParseGuide(text, s)
	if err != nil {
		return 0, err
	}
	return TotalScore(rounds), nil
}
