package puzzle

import "github.com/corey/adco/internal/domain/parsec"

// NavAction is a navigation instruction's kind.
type NavAction rune

const (
	North   NavAction = 'N'
	South   NavAction = 'S'
	East    NavAction = 'E'
	West    NavAction = 'W'
	Rotate  NavAction = 'R'
	Forward NavAction = 'F'
)

// NavInstruction is one line of the ferry's route. For Rotate, N counts
// clockwise quarter turns in [0, 4).
type NavInstruction struct {
	Action NavAction
	N      int
}

// Vector is a point or direction on the grid; north and east are positive.
type Vector struct{ X, Y int }

func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }
func (v Vector) Scale(s int) Vector  { return Vector{v.X * s, v.Y * s} }

// Rotate turns v clockwise by n quarter turns.
func (v Vector) Rotate(n int) Vector {
	for range n % 4 {
		v = Vector{v.Y, -v.X}
	}
	return v
}

func (v Vector) Manhattan() int { return abs(v.X) + abs(v.Y) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Ship is the ferry's position, heading, and waypoint.
type Ship struct {
	Position Vector
	Bearing  Vector
	Waypoint Vector
}

var startShip = Ship{Bearing: Vector{1, 0}, Waypoint: Vector{10, 1}}

var (
	navInstruction = parsec.FlatMap(
		parsec.Then(parsec.OneOfString("NSEWLRF"), parsec.Int()),
		func(v parsec.Pair[rune, int]) parsec.Parser[NavInstruction] {
			c, n := v.First, v.Second
			switch c {
			case 'L':
				return parsec.Lift(NavInstruction{Rotate, (4 - (n%360)/90) % 4})
			case 'R':
				return parsec.Lift(NavInstruction{Rotate, (n % 360) / 90})
			}
			return parsec.Lift(NavInstruction{NavAction(c), n})
		},
	)

	route = parsec.SepBy(navInstruction, parsec.Newline(), true)
)

// Day12 is "Rain Risk".
func Day12() Problem {
	return &twoPart[[]NavInstruction, int, int]{
		day:    12,
		title:  "Day 12: Rain Risk",
		parser: route,
		partA: func(in []NavInstruction) (int, error) {
			return sail(in, moveShip).Position.Manhattan(), nil
		},
		partB: func(in []NavInstruction) (int, error) {
			return sail(in, moveWaypoint).Position.Manhattan(), nil
		},
	}
}

func sail(in []NavInstruction, move func(Ship, NavInstruction) Ship) Ship {
	s := startShip
	for _, i := range in {
		s = move(s, i)
	}
	return s
}

func compass(a NavAction, n int) Vector {
	switch a {
	case North:
		return Vector{0, n}
	case South:
		return Vector{0, -n}
	case East:
		return Vector{n, 0}
	case West:
		return Vector{-n, 0}
	}
	return Vector{}
}

// moveShip applies i with compass moves acting on the ship itself.
func moveShip(s Ship, i NavInstruction) Ship {
	switch i.Action {
	case Rotate:
		s.Bearing = s.Bearing.Rotate(i.N)
	case Forward:
		s.Position = s.Position.Add(s.Bearing.Scale(i.N))
	default:
		s.Position = s.Position.Add(compass(i.Action, i.N))
	}
	return s
}

// moveWaypoint applies i with compass moves and rotations acting on the
// waypoint, which is relative to the ship.
func moveWaypoint(s Ship, i NavInstruction) Ship {
	switch i.Action {
	case Rotate:
		s.Waypoint = s.Waypoint.Rotate(i.N)
	case Forward:
		s.Position = s.Position.Add(s.Waypoint.Scale(i.N))
	default:
		s.Waypoint = s.Waypoint.Add(compass(i.Action, i.N))
	}
	return s
}
