package puzzle

import "github.com/corey/adco/internal/domain/parsec"

var treeMap = parsec.SepBy(parsec.RestOfLine(), parsec.Newline(), true)

type slope struct{ dx, dy int }

var allSlopes = []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// Day3 is "Toboggan Trajectory".
func Day3() Problem {
	return &twoPart[[]string, int64, int64]{
		day:    3,
		title:  "Day 3: Toboggan Trajectory",
		parser: treeMap,
		partA: func(rows []string) (int64, error) {
			return countTrees(rows, 3, 1), nil
		},
		partB: func(rows []string) (int64, error) {
			product := int64(1)
			for _, s := range allSlopes {
				product *= countTrees(rows, s.dx, s.dy)
			}
			return product, nil
		},
	}
}

// countTrees follows the slope down rows; the map repeats to the right.
// Empty rows hold no trees.
func countTrees(rows []string, dx, dy int) int64 {
	var trees int64
	for step, i := 0, 0; i < len(rows); step, i = step+1, i+dy {
		row := rows[i]
		if row == "" {
			continue
		}
		if row[(dx*step)%len(row)] == '#' {
			trees++
		}
	}
	return trees
}
