// Package game resolves rock-paper-scissors rounds over a fixed beats-cycle.
package game

import "fmt"

// Move is a hand shape. Its numeric value is the points it scores.
type Move int

// Moves in point order.
const (
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

// Value returns the points scored for playing m.
func (m Move) Value() int { return int(m) }

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Outcome is the result of a round for the scoring player. Its numeric
// value is the points it scores.
type Outcome int

// Outcomes in point order.
const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Value returns the points scored for outcome o.
func (o Outcome) Value() int { return int(o) }

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Moves lists every move in point order.
var Moves = [...]Move{Rock, Paper, Scissors}

// Outcomes lists every outcome in point order.
var Outcomes = [...]Outcome{Lose, Draw, Win}

// cycle holds the beats relation: each move beats the one after it, and the
// last beats the first.
var cycle = [...]Move{Rock, Scissors, Paper}

func position(m Move) int {
	for i, c := range cycle {
		if c == m {
			return i
		}
	}
	panic(fmt.Sprintf("game: move %d is not in the cycle", int(m)))
}

// MoveThatBeats returns the move that defeats m.
func MoveThatBeats(m Move) Move {
	return cycle[(position(m)+len(cycle)-1)%len(cycle)]
}

// MoveThatLoses returns the move that m defeats.
func MoveThatLoses(m Move) Move {
	return cycle[(position(m)+1)%len(cycle)]
}

// Beats reports whether a defeats b.
func Beats(a, b Move) bool {
	return b == MoveThatLoses(a)
}

// OutcomeOf returns the outcome for the player throwing yours against theirs.
func OutcomeOf(theirs, yours Move) Outcome {
	switch {
	case theirs == yours:
		return Draw
	case Beats(yours, theirs):
		return Win
	default:
		return Lose
	}
}

// DesiredMove returns the move that produces want against theirs.
func DesiredMove(theirs Move, want Outcome) Move {
	switch want {
	case Draw:
		return theirs
	case Win:
		return MoveThatBeats(theirs)
	default:
		return MoveThatLoses(theirs)
	}
}

// Round is a single resolved throw.
type Round struct {
	Theirs Move
	Yours  Move
}

// Outcome returns the result of the round for the scoring player.
func (r Round) Outcome() Outcome { return OutcomeOf(r.Theirs, r.Yours) }

// Score returns the outcome value plus the value of the move played.
func (r Round) Score() int {
	return r.Outcome().Value() + r.Yours.Value()
}

// TotalScore sums the score of every round.
func TotalScore(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += r.Score()
	}
	return total
}
