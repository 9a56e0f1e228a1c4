package puzzle

import (
	"slices"

	"github.com/corey/adco/internal/domain/parsec"
)

var startingNumbers = parsec.SepBy1(parsec.Int(), parsec.Char(','), false)

// Day15 is "Rambunctious Recitation".
func Day15() Problem {
	return &twoPart[[]int, int, int]{
		day:    15,
		title:  "Day 15: Rambunctious Recitation",
		parser: startingNumbers,
		partA: func(xs []int) (int, error) {
			return recite(xs, 2020)
		},
		partB: func(xs []int) (int, error) {
			return recite(xs, 30_000_000)
		},
	}
}

// recite plays the memory game and returns the number spoken on turn
// target: after the starters, each turn speaks how many turns ago the
// previous number was last spoken, or 0 if it was new.
func recite(starters []int, target int) (int, error) {
	if len(starters) == 0 {
		return 0, errorf("Cannot begin without any starting numbers")
	}
	if slices.Min(starters) < 0 {
		return 0, errorf("Starting numbers must not be negative")
	}
	if target <= len(starters) {
		return starters[target-1], nil
	}

	// Every number spoken after the starters is below target, so a slice of
	// that size covers them; larger starters go to overflow. Stored turns
	// are one past the turn index, 0 meaning never spoken.
	seen := &turnTable{recent: make([]uint32, target), overflow: make(map[int]uint32)}
	for i, n := range starters[:len(starters)-1] {
		seen.set(n, uint32(i+1))
	}
	spoken := starters[len(starters)-1]
	for turn := len(starters) - 1; turn < target-1; turn++ {
		next := 0
		if last := seen.get(spoken); last != 0 {
			next = turn - int(last-1)
		}
		seen.set(spoken, uint32(turn+1))
		spoken = next
	}
	return spoken, nil
}

type turnTable struct {
	recent   []uint32
	overflow map[int]uint32
}

func (t *turnTable) get(n int) uint32 {
	if n < len(t.recent) {
		return t.recent[n]
	}
	return t.overflow[n]
}

func (t *turnTable) set(n int, turn uint32) {
	if n < len(t.recent) {
		t.recent[n] = turn
		return
	}
	t.overflow[n] = turn
}
