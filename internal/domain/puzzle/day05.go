package puzzle

import (
	"slices"

	"github.com/corey/adco/internal/domain/parsec"
)

// Half is one binary space partitioning step: keep the lower or the upper
// half of the remaining range.
type Half bool

const (
	Lower Half = false
	Upper Half = true
)

// BoardingPass is a row code (F/B) followed by a column code (L/R).
type BoardingPass struct {
	Row []Half
	Col []Half
}

func (b BoardingPass) RowID() int  { return decodeHalves(b.Row) }
func (b BoardingPass) ColID() int  { return decodeHalves(b.Col) }
func (b BoardingPass) SeatID() int { return 8*b.RowID() + b.ColID() }

// decodeHalves narrows [0, 2^len) one step at a time.
func decodeHalves(steps []Half) int {
	lo, hi := 0, 1<<len(steps)-1
	for _, h := range steps {
		size := hi + 1 - lo
		if h == Upper {
			lo += size / 2
		} else {
			hi -= size / 2
		}
	}
	return lo
}

func halfOf(upper rune) func(rune) Half {
	return func(c rune) Half { return Half(c == upper) }
}

var (
	rowCode = parsec.Many1(parsec.Map(parsec.OneOfString("BF"), halfOf('B')))
	colCode = parsec.Many1(parsec.Map(parsec.OneOfString("LR"), halfOf('R')))

	boardingPass = parsec.Map(parsec.Then(rowCode, colCode), func(v parsec.Pair[[]Half, []Half]) BoardingPass {
		return BoardingPass{Row: v.First, Col: v.Second}
	})

	boardingPasses = parsec.SepBy(boardingPass, parsec.Newline(), true)
)

// Day5 is "Binary Boarding".
func Day5() Problem {
	return &twoPart[[]BoardingPass, int, int]{
		day:    5,
		title:  "Day 5: Binary Boarding",
		parser: boardingPasses,
		partA: func(passes []BoardingPass) (int, error) {
			if len(passes) == 0 {
				return 0, errorf("No largest seat id found")
			}
			return slices.Max(seatIDs(passes)), nil
		},
		partB: findMissingSeat,
	}
}

func seatIDs(passes []BoardingPass) []int {
	ids := make([]int, len(passes))
	for i, b := range passes {
		ids[i] = b.SeatID()
	}
	return ids
}

// findMissingSeat returns the one free seat strictly between the lowest and
// highest taken seats.
func findMissingSeat(passes []BoardingPass) (int, error) {
	taken := make(map[int]bool, len(passes))
	for _, id := range seatIDs(passes) {
		taken[id] = true
	}
	if len(taken) <= 2 {
		return 0, errorf("Not enough seats")
	}
	ids := seatIDs(passes)
	for id := slices.Min(ids) + 1; id < slices.Max(ids); id++ {
		if !taken[id] {
			return id, nil
		}
	}
	return 0, errorf("No missing seat found")
}
