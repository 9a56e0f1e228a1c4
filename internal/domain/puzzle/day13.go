package puzzle

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

// BusNotes is the arrival time and the schedule; out-of-service buses
// ("x") are None.
type BusNotes struct {
	Arrival int
	Buses   []option.Option[int]
}

var (
	busSchedule = parsec.SepBy1(
		parsec.Choice(
			parsec.Map(parsec.Int(), option.Some[int]),
			parsec.Map(parsec.Char('x'), func(rune) option.Option[int] { return option.None[int]() }),
		),
		parsec.Char(','),
		false,
	)

	busNotes = parsec.Map(
		parsec.Series3(parsec.Int(), parsec.Newline(), busSchedule),
		func(v parsec.Tuple3[int, rune, []option.Option[int]]) BusNotes {
			return BusNotes{Arrival: v.V1, Buses: v.V3}
		},
	)
)

// Day13 is "Shuttle Search".
func Day13() Problem {
	return &twoPart[BusNotes, int, *big.Int]{
		day:    13,
		title:  "Day 13: Shuttle Search",
		parser: busNotes,
		partA:  earliestBus,
		partB: func(n BusNotes) (*big.Int, error) {
			return earliestCascade(n.Buses)
		},
	}
}

// earliestBus multiplies the id of the first bus to leave after arrival by
// the minutes spent waiting for it.
func earliestBus(n BusNotes) (int, error) {
	best, wait := 0, -1
	for _, b := range n.Buses {
		id, ok := b.Get()
		if !ok || id <= 0 {
			continue
		}
		w := id - n.Arrival%id
		if wait < 0 || w < wait {
			best, wait = id, w
		}
	}
	if wait < 0 {
		return 0, errorf("No buses in service")
	}
	return best * wait, nil
}

// Congruence is t ≡ R (mod M).
type Congruence struct {
	R, M *big.Int
}

// addConstraint sieves for the smallest t satisfying both y and x, and
// returns it together with the combined modulus lcm(y.M, x.M).
func addConstraint(y, x Congruence) Congruence {
	attempt := new(big.Int).Set(y.R)
	r := new(big.Int)
	for i := new(big.Int); i.Cmp(x.M) < 0; i.Add(i, big.NewInt(1)) {
		if r.Mod(attempt, x.M).Cmp(x.R) == 0 {
			gcd := new(big.Int).GCD(nil, nil, y.M, x.M)
			lcm := new(big.Int).Mul(y.M, x.M)
			return Congruence{R: attempt, M: lcm.Quo(lcm, gcd)}
		}
		attempt.Add(attempt, y.M)
	}
	return Congruence{R: big.NewInt(0), M: big.NewInt(1)}
}

// earliestCascade finds the first timestamp t where the bus at index i
// departs at t+i, for every bus in service.
func earliestCascade(buses []option.Option[int]) (*big.Int, error) {
	var cs []Congruence
	for i, b := range buses {
		id, ok := b.Get()
		if !ok {
			continue
		}
		if id <= 0 {
			return nil, errorf("Invalid bus id %d", id)
		}
		r := ((id-i)%id + id) % id
		cs = append(cs, Congruence{R: big.NewInt(int64(r)), M: big.NewInt(int64(id))})
	}
	if len(cs) == 0 {
		return nil, errorf("No buses in service")
	}
	// Largest moduli first keeps the sieve short.
	slices.SortFunc(cs, func(a, b Congruence) int { return cmp.Compare(b.M.Int64(), a.M.Int64()) })
	acc := cs[0]
	for _, c := range cs[1:] {
		acc = addConstraint(acc, c)
	}
	return acc.R, nil
}
