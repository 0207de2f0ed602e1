package game

import (
	"fmt"
	"strings"

	"github.com/okian/advent/internal/domain/puzzle"
)

// Strategy selects how the second column of a strategy guide is read.
type Strategy int

const (
	// ByMove reads X, Y, Z as the move to play.
	ByMove Strategy = iota
	// ByOutcome reads X, Y, Z as the outcome the round must end in.
	ByOutcome
)

var (
	theirMoves = map[string]Move{"A": Rock, "B": Paper, "C": Scissors}
	yourMoves  = map[string]Move{"X": Rock, "Y": Paper, "Z": Scissors}
	outcomes   = map[string]Outcome{"X": Lose, "Y": Draw, "Z": Win}
)

// ParseTheirMove maps A, B, C to a move.
func ParseTheirMove(tok string) (Move, error) {
	m, ok := theirMoves[tok]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not one of A, B, C", ErrInvalidToken, tok)
	}
	return m, nil
}

// ParseYourMove maps X, Y, Z to a move.
func ParseYourMove(tok string) (Move, error) {
	m, ok := yourMoves[tok]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not one of X, Y, Z", ErrInvalidToken, tok)
	}
	return m, nil
}

// ParseOutcome maps X, Y, Z to an outcome.
func ParseOutcome(tok string) (Outcome, error) {
	o, ok := outcomes[tok]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not one of X, Y, Z", ErrInvalidToken, tok)
	}
	return o, nil
}

// ParseGuide reads one "<their> <second>" pair per line and resolves each
// line into a round according to s.
func ParseGuide(text string, s Strategy) ([]Round, error) {
	lines := puzzle.Lines(text)
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		r, err := parseRound(line, s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func parseRound(line string, s Strategy) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, fmt.Errorf("%w: want 2 fields, got %d in %q", ErrMalformedRound, len(fields), line)
	}
	theirs, err := ParseTheirMove(fields[0])
	if err != nil {
		return Round{}, err
	}
	if s == ByOutcome {
		want, err := ParseOutcome(fields[1])
		if err != nil {
			return Round{}, err
		}
		return Round{Theirs: theirs, Yours: DesiredMove(theirs, want)}, nil
	}
	yours, err := ParseYourMove(fields[1])
	if err != nil {
		return Round{}, err
	}
	return Round{Theirs: theirs, Yours: yours}, nil
}
