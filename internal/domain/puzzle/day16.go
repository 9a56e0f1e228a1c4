package puzzle

import (
	"slices"
	"strings"

	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

// Range is an inclusive span of ticket values.
type Range struct{ Lo, Hi int }

func (r Range) Contains(x int) bool { return r.Lo <= x && x <= r.Hi }

// FieldRule is "name: a-b or c-d".
type FieldRule struct {
	Name   string
	R1, R2 Range
}

func (f FieldRule) Valid(x int) bool { return f.R1.Contains(x) || f.R2.Contains(x) }

// TicketNotes is the whole day 16 input.
type TicketNotes struct {
	Rules  []FieldRule
	Yours  []int
	Nearby [][]int
}

var (
	valueRange = parsec.Map(
		parsec.Series3(parsec.Int(), parsec.Char('-'), parsec.Int()),
		func(v parsec.Tuple3[int, rune, int]) Range { return Range{v.V1, v.V3} },
	)

	fieldName = parsec.Map(
		parsec.ManyTill(parsec.NoneOf(':'), parsec.Char(':')),
		func(rs []rune) string { return string(rs) },
	)

	fieldRule = parsec.Map(
		parsec.Series5(fieldName, parsec.String(": "), valueRange, parsec.String(" or "), valueRange),
		func(v parsec.Tuple5[string, string, Range, string, Range]) FieldRule {
			return FieldRule{Name: v.V1, R1: v.V3, R2: v.V5}
		},
	)

	ticket = parsec.SepBy1(parsec.Int(), parsec.Char(','), false)

	ticketNotes = parsec.Map(
		parsec.Series5(
			parsec.SepBy1(fieldRule, parsec.Newline(), true),
			parsec.Series3(parsec.Newline(), parsec.String("your ticket:"), parsec.Newline()),
			parsec.ThenIgnore(ticket, parsec.Newline()),
			parsec.Series3(parsec.Newline(), parsec.String("nearby tickets:"), parsec.Newline()),
			parsec.SepBy1(ticket, parsec.Newline(), true),
		),
		func(v parsec.Tuple5[[]FieldRule, parsec.Tuple3[rune, string, rune], []int, parsec.Tuple3[rune, string, rune], [][]int]) TicketNotes {
			return TicketNotes{Rules: v.V1, Yours: v.V3, Nearby: v.V5}
		},
	)
)

// Day16 is "Ticket Translation".
func Day16() Problem {
	return &twoPart[TicketNotes, int64, int64]{
		day:    16,
		title:  "Day 16: Ticket Translation",
		parser: ticketNotes,
		partA: func(n TicketNotes) (int64, error) {
			var rate int64
			for _, t := range n.Nearby {
				for _, x := range t {
					if !validForAny(n.Rules, x) {
						rate += int64(x)
					}
				}
			}
			return rate, nil
		},
		partB: departureProduct,
	}
}

func validForAny(rules []FieldRule, x int) bool {
	for _, r := range rules {
		if r.Valid(x) {
			return true
		}
	}
	return false
}

func departureProduct(n TicketNotes) (int64, error) {
	ordering, ok := findValidOrdering(n).Get()
	if !ok {
		return 0, errorf("No valid ordering found")
	}
	product := int64(1)
	for name, x := range labelTicket(ordering, n.Yours) {
		if strings.HasPrefix(name, "departure") {
			product *= int64(x)
		}
	}
	return product, nil
}

// possibleRules returns the rules, among those not yet used, that accept
// every value in xs.
func possibleRules(rules []FieldRule, used []bool, xs []int) []int {
	var out []int
	for i, r := range rules {
		if used[i] {
			continue
		}
		if !slices.ContainsFunc(xs, func(x int) bool { return !r.Valid(x) }) {
			out = append(out, i)
		}
	}
	return out
}

// findValidOrdering assigns one rule to each ticket column so that every
// valid nearby ticket satisfies it. Tickets holding a value no rule accepts
// are ignored.
func findValidOrdering(n TicketNotes) option.Option[[]FieldRule] {
	width := len(n.Yours)
	var columns [][]int
	for c := 0; c < width; c++ {
		columns = append(columns, []int{})
	}
	for _, t := range n.Nearby {
		if len(t) != width || slices.ContainsFunc(t, func(x int) bool { return !validForAny(n.Rules, x) }) {
			continue
		}
		for c, x := range t {
			columns[c] = append(columns[c], x)
		}
	}

	// Trying the most constrained columns first prunes the search early.
	unused := make([]bool, len(n.Rules))
	order := make([]int, width)
	for c := range order {
		order[c] = c
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len(possibleRules(n.Rules, unused, columns[a])) - len(possibleRules(n.Rules, unused, columns[b]))
	})

	assigned := make([]int, width)
	used := make([]bool, len(n.Rules))
	var search func(k int) bool
	search = func(k int) bool {
		if k == len(order) {
			return true
		}
		col := order[k]
		for _, i := range possibleRules(n.Rules, used, columns[col]) {
			used[i] = true
			assigned[col] = i
			if search(k + 1) {
				return true
			}
			used[i] = false
		}
		return false
	}
	if !search(0) {
		return option.None[[]FieldRule]()
	}
	out := make([]FieldRule, width)
	for c, i := range assigned {
		out[c] = n.Rules[i]
	}
	return option.Some(out)
}

// labelTicket names each value of t by the rule ordered at its column.
func labelTicket(ordering []FieldRule, t []int) map[string]int {
	out := make(map[string]int, len(t))
	for i, r := range ordering {
		if i < len(t) {
			out[r.Name] = t[i]
		}
	}
	return out
}
