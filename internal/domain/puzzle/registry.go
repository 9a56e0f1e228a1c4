package puzzle

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to problems.
type Registry struct {
	problems map[int]Problem
}

// NewRegistry registers ps. A second problem for the same day replaces the
// first.
func NewRegistry(ps ...Problem) *Registry {
	r := &Registry{problems: make(map[int]Problem, len(ps))}
	for _, p := range ps {
		r.problems[p.Day()] = p
	}
	return r
}

// Default returns every implemented day.
func Default() *Registry {
	return NewRegistry(
		Day1(), Day2(), Day3(), Day4(),
		Day5(), Day6(), Day7(), Day8(),
		Day9(), Day10(), Day11(), Day12(),
		Day13(), Day14(), Day15(), Day16(),
	)
}

// Get looks up a day.
func (r *Registry) Get(day int) (Problem, error) {
	p, ok := r.problems[day]
	if !ok {
		return nil, fmt.Errorf("day %d is not implemented", day)
	}
	return p, nil
}

// Days returns the registered day numbers in order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.problems))
	for d := range r.problems {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
