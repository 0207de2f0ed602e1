// Package rucksack finds misplaced items and group badges in elf rucksacks.
package rucksack

import (
	"fmt"

	"github.com/okian/advent/internal/domain/puzzle"
)

// groupSize is the number of elves sharing a badge.
const groupSize = 3

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidItem, c)
	}
}

// itemSet is a bitset indexed by priority.
type itemSet uint64

func newItemSet(items string) (itemSet, error) {
	var s itemSet
	for i := 0; i < len(items); i++ {
		p, err := Priority(items[i])
		if err != nil {
			return 0, err
		}
		s |= 1 << p
	}
	return s, nil
}

func (s itemSet) has(p int) bool { return s&(1<<p) != 0 }

// Common returns the item present in every string. The last string is
// scanned left to right and the first item found in all others wins.
func Common(items ...string) (byte, error) {
	if len(items) == 0 {
		return 0, ErrNoCommonItem
	}
	all := ^itemSet(0)
	for _, s := range items[:len(items)-1] {
		set, err := newItemSet(s)
		if err != nil {
			return 0, err
		}
		all &= set
	}
	last := items[len(items)-1]
	for i := 0; i < len(last); i++ {
		p, err := Priority(last[i])
		if err != nil {
			return 0, err
		}
		if all.has(p) {
			return last[i], nil
		}
	}
	return 0, ErrNoCommonItem
}

// Compartments splits a rucksack into its two equal halves.
func Compartments(line string) (string, string, error) {
	if len(line)%2 != 0 {
		return "", "", fmt.Errorf("%w: %d items", ErrUnevenRucksack, len(line))
	}
	half := len(line) / 2
	return line[:half], line[half:], nil
}

// Misplaced returns the priority of the item found in both compartments.
func Misplaced(line string) (int, error) {
	a, b, err := Compartments(line)
	if err != nil {
		return 0, err
	}
	c, err := Common(a, b)
	if err != nil {
		return 0, err
	}
	return Priority(c)
}

// Badge returns the priority of the item carried by every rucksack in group.
func Badge(group []string) (int, error) {
	c, err := Common(group...)
	if err != nil {
		return 0, err
	}
	return Priority(c)
}

// Solver answers the rucksack reorganization puzzle.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 3 }
func (Solver) Title() string { return "Rucksack Reorganization" }

// Part1 sums the priorities of the misplaced item in each rucksack.
func (Solver) Part1(text string) (int, error) {
	total := 0
	for i, line := range puzzle.Lines(text) {
		p, err := Misplaced(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

// Part2 sums the badge priorities of each consecutive group of three.
func (Solver) Part2(text string) (int, error) {
	lines := puzzle.Lines(text)
	if len(lines)%groupSize != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks", ErrGroupSize, len(lines))
	}
	total := 0
	for i := 0; i < len(lines); i += groupSize {
		p, err := Badge(lines[i : i+groupSize])
		if err != nil {
			return 0, fmt.Errorf("lines %d-%d: %w", i+1, i+groupSize, err)
		}
		total += p
	}
	return total, nil
}

func (Solver) Example() (puzzle.Expected, bool) {
	return puzzle.Expected{Part1: 157, Part2: 70}, true
}
