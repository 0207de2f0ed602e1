package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Registry maps day numbers to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns a registry holding the given solvers.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds s under its day. Registering two solvers for the same day is
// a programming error and panics.
func (r *Registry) Register(s Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := s.Day()
	if day < 1 {
		panic(fmt.Sprintf("puzzle: solver %q has invalid day %d", s.Title(), day))
	}
	if _, ok := r.solvers[day]; ok {
		panic(fmt.Sprintf("puzzle: duplicate solvers registered for day %d", day))
	}
	r.solvers[day] = s
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// ParseDay accepts "2", "day2" and "day-2" (case-insensitive).
func ParseDay(s string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(t, "day"); ok {
		t = strings.TrimPrefix(rest, "-")
	}
	n, err := strconv.Atoi(t)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return n, nil
}
