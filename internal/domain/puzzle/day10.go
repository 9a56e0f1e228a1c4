package puzzle

import (
	"slices"
	"strconv"
	"strings"

	"github.com/corey/adco/internal/domain/memo"
	"github.com/corey/adco/internal/domain/parsec"
)

var adapters = parsec.SepBy(parsec.Int(), parsec.Newline(), true)

// Day10 is "Adapter Array".
func Day10() Problem {
	return &twoPart[[]int, int64, int64]{
		day:    10,
		title:  "Day 10: Adapter Array",
		parser: adapters,
		partA: func(xs []int) (int64, error) {
			counts := make(map[int]int64)
			for _, j := range joltJumps(xs) {
				counts[j]++
			}
			return counts[1] * counts[3], nil
		},
		partB: func(xs []int) (int64, error) {
			return countChains(joltJumps(xs)), nil
		},
	}
}

// joltJumps sorts the chain from the outlet (0) to the device (max+3) and
// returns the differences between neighbours.
func joltJumps(xs []int) []int {
	chain := append([]int{0}, xs...)
	slices.Sort(chain)
	chain = append(chain, chain[len(chain)-1]+3)
	jumps := make([]int, len(chain)-1)
	for i := range jumps {
		jumps[i] = chain[i+1] - chain[i]
	}
	return jumps
}

// arrangements counts the ways a run of jumps can be walked when any
// adapter may be skipped, as long as no jump exceeds 3.
func arrangements(jumps []int) int64 {
	switch {
	case len(jumps) == 0 || jumps[0] > 3:
		return 0
	case len(jumps) < 2:
		return 1
	}
	merged := append([]int{jumps[0] + jumps[1]}, jumps[2:]...)
	return arrangements(jumps[1:]) + arrangements(merged)
}

// countChains multiplies the arrangements of each run between 3-jumps.
// A 3-jump can never be skipped, so runs are independent.
func countChains(jumps []int) int64 {
	// Runs repeat a lot; slices can't key a map, so key on their text.
	cached := memo.Memoize(func(key string) int64 {
		return arrangements(decodeJumps(key))
	})
	total := int64(1)
	for len(jumps) > 0 {
		if jumps[0] == 3 {
			jumps = jumps[1:]
			continue
		}
		n := 0
		for n < len(jumps) && jumps[n] != 3 {
			n++
		}
		total *= cached.Call(encodeJumps(jumps[:n]))
		jumps = jumps[n:]
	}
	return total
}

func encodeJumps(js []int) string {
	parts := make([]string, len(js))
	for i, j := range js {
		parts[i] = strconv.Itoa(j)
	}
	return strings.Join(parts, ",")
}

func decodeJumps(key string) []int {
	var out []int
	for _, s := range strings.Split(key, ",") {
		n, _ := strconv.Atoi(s)
		out = append(out, n)
	}
	return out
}
