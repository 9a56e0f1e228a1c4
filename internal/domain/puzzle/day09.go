package puzzle

import (
	"slices"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

const xmasPreamble = 25

var xmasData = parsec.SepBy(parsec.Long(), parsec.Newline(), true)

// Day9 is "Encoding Error".
func Day9() Problem {
	return &twoPart[[]int64, int64, int64]{
		day:    9,
		title:  "Day 9: Encoding Error",
		parser: xmasData,
		partA:  firstInvalid,
		partB: func(xs []int64) (int64, error) {
			target, err := firstInvalid(xs)
			if err != nil {
				return 0, err
			}
			run, ok := sublistSummingTo(xs, target).Get()
			if !ok {
				return 0, errorf("Sublist not found")
			}
			return slices.Min(run) + slices.Max(run), nil
		},
	}
}

func firstInvalid(xs []int64) (int64, error) {
	x, ok := findFailingChecksum(xs, xmasPreamble).Get()
	if !ok {
		return 0, errorf("Not found")
	}
	return x, nil
}

// pairSums tracks the sums of every pair among the last capacity values.
type pairSums struct {
	capacity int
	items    []int64
	sums     map[int64]int
}

func newPairSums(capacity int) *pairSums {
	return &pairSums{capacity: capacity, sums: make(map[int64]int)}
}

func (r *pairSums) add(x int64) {
	if len(r.items) >= r.capacity {
		out := r.items[0]
		r.items = r.items[1:]
		for _, y := range r.items {
			s := out + y
			if r.sums[s] == 1 {
				delete(r.sums, s)
			} else {
				r.sums[s]--
			}
		}
	}
	for _, y := range r.items {
		r.sums[x+y]++
	}
	r.items = append(r.items, x)
}

func (r *pairSums) contains(x int64) bool {
	_, ok := r.sums[x]
	return ok
}

// findFailingChecksum returns the first value after the preamble that is
// not the sum of two of the preamble values before it.
func findFailingChecksum(xs []int64, preamble int) option.Option[int64] {
	rs := newPairSums(preamble)
	for i, x := range xs {
		if i >= preamble && !rs.contains(x) {
			return option.Some(x)
		}
		rs.add(x)
	}
	return option.None[int64]()
}

// sublistSummingTo finds a contiguous run of at least two values adding up
// to target. All values must be positive.
func sublistSummingTo(xs []int64, target int64) option.Option[[]int64] {
	if len(xs) < 2 {
		return option.None[[]int64]()
	}
	i, j := 0, 1
	sum := xs[0] + xs[1]
	for j < len(xs) {
		switch {
		case sum == target:
			return option.Some(xs[i : j+1])
		case sum < target:
			j++
			if j < len(xs) {
				sum += xs[j]
			}
		default:
			sum -= xs[i]
			i++
			if i >= j {
				j = i + 1
				if j < len(xs) {
					sum += xs[j]
				}
			}
		}
	}
	return option.None[[]int64]()
}
