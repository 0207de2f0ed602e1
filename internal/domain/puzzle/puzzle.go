// Package puzzle defines the contract every daily solver implements and the
// registry the runner looks solvers up in.
package puzzle

import "strings"

// Part identifies one of the two questions asked for a day.
type Part int

// Parts of a puzzle.
const (
	Part1 Part = 1
	Part2 Part = 2
)

// Expected holds the published answers for a day's example input.
type Expected struct {
	Part1 int
	Part2 int
}

// For returns the expected answer for p.
func (e Expected) For(p Part) int {
	if p == Part2 {
		return e.Part2
	}
	return e.Part1
}

// Solver computes both answers for one day from the full input text.
// Implementations are pure: the same text always yields the same answers.
type Solver interface {
	Day() int
	Title() string
	Part1(text string) (int, error)
	Part2(text string) (int, error)
	// Example returns the known answers for the day's example input, if any.
	Example() (Expected, bool)
}

// Solve dispatches to the solver method for p.
func Solve(s Solver, p Part, text string) (int, error) {
	if p == Part2 {
		return s.Part2(text)
	}
	return s.Part1(text)
}

// Lines splits text into lines, dropping trailing newlines at the end of the
// input and carriage returns at the end of each line. Empty text has no lines.
func Lines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
