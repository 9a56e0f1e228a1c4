package puzzle

import (
	"fmt"
	"strings"

	"github.com/corey/adco/internal/domain/parsec"
)

// SeatGrid is the ferry layout. Seats holds every position marked 'L';
// everything else is floor.
type SeatGrid struct {
	Rows  int
	Cols  int
	Seats map[[2]int]bool
}

var seatGrid = parsec.FlatMap(
	parsec.SepBy1(parsec.Many1(parsec.OneOfString("L.")), parsec.Newline(), true),
	func(rows [][]rune) parsec.Parser[SeatGrid] {
		g := SeatGrid{Rows: len(rows), Cols: len(rows[0]), Seats: make(map[[2]int]bool)}
		for r, row := range rows {
			if len(row) != g.Cols {
				return parsec.Failure[SeatGrid](fmt.Sprintf("Row %d has %d cells, expected %d", r+1, len(row), g.Cols))
			}
			for c, x := range row {
				if x == 'L' {
					g.Seats[[2]int{r, c}] = true
				}
			}
		}
		return parsec.Lift(g)
	},
)

// Day11 is "Seating System".
func Day11() Problem {
	return &twoPart[SeatGrid, int, int]{
		day:    11,
		title:  "Day 11: Seating System",
		parser: seatGrid,
		partA: func(g SeatGrid) (int, error) {
			return newSeating(g, 4, nearestSeats).stabilize().occupied(), nil
		},
		partB: func(g SeatGrid) (int, error) {
			return newSeating(g, 5, visibleSeats).stabilize().occupied(), nil
		},
	}
}

var directions = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// neighbourRule lists the seat indices that influence seat i.
type neighbourRule func(s *seating, i int) []int

// nearestSeats is the eight adjacent cells that hold a seat.
func nearestSeats(s *seating, i int) []int {
	var out []int
	row, col := i/s.cols, i%s.cols
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < s.rows && c >= 0 && c < s.cols && s.seat[r*s.cols+c] {
			out = append(out, r*s.cols+c)
		}
	}
	return out
}

// visibleSeats is the first seat seen in each of the eight directions.
func visibleSeats(s *seating, i int) []int {
	var out []int
	row, col := i/s.cols, i%s.cols
	for _, d := range directions {
		for r, c := row+d[0], col+d[1]; r >= 0 && r < s.rows && c >= 0 && c < s.cols; r, c = r+d[0], c+d[1] {
			if j := r*s.cols + c; s.seat[j] {
				out = append(out, j)
				break
			}
		}
	}
	return out
}

// seating runs the cellular automaton over a flattened grid. Each seat's
// neighbours are resolved once up front.
type seating struct {
	rows, cols int
	tolerance  int
	seat       []bool
	filled     []bool
	neighbours [][]int
}

func newSeating(g SeatGrid, tolerance int, rule neighbourRule) *seating {
	s := &seating{
		rows:       g.Rows,
		cols:       g.Cols,
		tolerance:  tolerance,
		seat:       make([]bool, g.Rows*g.Cols),
		filled:     make([]bool, g.Rows*g.Cols),
		neighbours: make([][]int, g.Rows*g.Cols),
	}
	for p := range g.Seats {
		s.seat[p[0]*s.cols+p[1]] = true
	}
	for i, ok := range s.seat {
		if ok {
			s.neighbours[i] = rule(s, i)
		}
	}
	return s
}

// step applies one round: an empty seat with no filled neighbours fills,
// a filled seat with tolerance or more filled neighbours empties. It
// reports whether anything changed.
func (s *seating) step() bool {
	next := make([]bool, len(s.filled))
	changed := false
	for i, ok := range s.seat {
		if !ok {
			continue
		}
		n := 0
		for _, j := range s.neighbours[i] {
			if s.filled[j] {
				n++
			}
		}
		if s.filled[i] {
			next[i] = n < s.tolerance
		} else {
			next[i] = n == 0
		}
		changed = changed || next[i] != s.filled[i]
	}
	s.filled = next
	return changed
}

func (s *seating) stabilize() *seating {
	for s.step() {
	}
	return s
}

func (s *seating) occupied() int {
	n := 0
	for _, f := range s.filled {
		if f {
			n++
		}
	}
	return n
}

// String draws the grid with '#' for filled seats, 'L' for empty seats and
// '.' for floor.
func (s *seating) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			i := r*s.cols + c
			switch {
			case s.filled[i]:
				sb.WriteByte('#')
			case s.seat[i]:
				sb.WriteByte('L')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
