// Package calories totals the food each elf carries.
package calories

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/okian/advent/internal/domain/puzzle"
)

// topN is the number of largest groups summed for part 2.
const topN = 3

// ParseGroups splits text on blank lines and returns the sum of each group.
func ParseGroups(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	lines := puzzle.Lines(text)

	var (
		sums  []int
		sum   int
		items int
	)
	flush := func(line int) error {
		if items == 0 {
			return fmt.Errorf("line %d: %w", line, ErrEmptyGroup)
		}
		sums = append(sums, sum)
		sum, items = 0, 0
		return nil
	}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if err := flush(i + 1); err != nil {
				return nil, err
			}
			continue
		}
		// Calories are unsigned; a leading sign is rejected.
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrInvalidNumber, line)
		}
		sum += int(n)
		items++
	}
	if err := flush(len(lines)); err != nil {
		return nil, err
	}
	return sums, nil
}

// Max returns the largest sum.
func Max(sums []int) int {
	best := sums[0]
	for _, s := range sums[1:] {
		if s > best {
			best = s
		}
	}
	return best
}

// TopSum returns the sum of the n largest sums, or of all of them when there
// are fewer than n.
func TopSum(sums []int, n int) int {
	sorted := append([]int(nil), sums...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	total := 0
	for _, s := range sorted {
		total += s
	}
	return total
}

// Solver answers the calorie counting puzzle.
type Solver struct{}

var _ puzzle.Solver = Solver{}

func (Solver) Day() int      { return 1 }
func (Solver) Title() string { return "Calorie Counting" }

// Part1 returns the most calories carried by a single elf.
func (Solver) Part1(text string) (int, error) {
	sums, err := ParseGroups(text)
	if err != nil {
		return 0, err
	}
	return Max(sums), nil
}

// Part2 returns the calories carried by the top three elves.
func (Solver) Part2(text string) (int, error) {
	sums, err := ParseGroups(text)
	if err != nil {
		return 0, err
	}
	return TopSum(sums, topN), nil
}

func (Solver) Example() (puzzle.Expected, bool) {
	return puzzle.Expected{Part1: 24000, Part2: 45000}, true
}
