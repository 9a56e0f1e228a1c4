package puzzle

import (
	"slices"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

const expenseTarget = 2020

var expenseReport = parsec.SepBy(parsec.Int(), parsec.Newline(), true)

// Day1 is "Report Repair".
func Day1() Problem {
	return &twoPart[[]int, int, int]{
		day:    1,
		title:  "Day 1: Report Repair",
		parser: expenseReport,
		partA: func(xs []int) (int, error) {
			return productOfEntries(xs, 2, "No pair found summing to 2020")
		},
		partB: func(xs []int) (int, error) {
			return productOfEntries(xs, 3, "No triple found summing to 2020")
		},
	}
}

func productOfEntries(xs []int, n int, notFound string) (int, error) {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	entries, ok := findNSummingTo(sorted, expenseTarget, n).Get()
	if !ok {
		return 0, errorf("%s", notFound)
	}
	product := 1
	for _, x := range entries {
		product *= x
	}
	return product, nil
}

// findNSummingTo picks n entries of sorted that add up to sum. Entries are
// returned largest pick first.
func findNSummingTo(sorted []int, sum, n int) option.Option[[]int] {
	if n <= 0 {
		if sum == 0 {
			return option.Some([]int{})
		}
		return option.None[[]int]()
	}
	if len(sorted) == 0 {
		return option.None[[]int]()
	}
	x := sorted[0]
	if x > sum {
		return option.None[[]int]()
	}
	return option.Fold(findNSummingTo(sorted[1:], sum-x, n-1),
		func(xs []int) option.Option[[]int] { return option.Some(append(xs, x)) },
		func() option.Option[[]int] { return findNSummingTo(sorted[1:], sum, n) },
	)
}
