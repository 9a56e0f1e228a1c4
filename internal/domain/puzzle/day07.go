package puzzle

import (
	"github.com/corey/adco/internal/domain/either"
	"github.com/corey/adco/internal/domain/memo"
	"github.com/corey/adco/internal/domain/option"
	"github.com/corey/adco/internal/domain/parsec"
)

const targetBag = "shiny gold"

// ContainReq is "n <color> bags" on the right-hand side of a rule.
type ContainReq struct {
	Count int
	Color string
}

// LuggageRules maps a bag color to what it must directly contain.
type LuggageRules map[string][]ContainReq

var (
	bagColor = parsec.Map(
		parsec.Series2(
			parsec.ManyTill(parsec.AnyChar(), parsec.String(" bag")),
			parsec.Then(parsec.String(" bag"), parsec.Optional(parsec.Char('s'))),
		),
		func(v parsec.Tuple2[[]rune, parsec.Pair[string, option.Option[rune]]]) string {
			return string(v.V1)
		},
	)

	containReq = parsec.Map(
		parsec.Series3(parsec.Int(), parsec.Space(), bagColor),
		func(v parsec.Tuple3[int, rune, string]) ContainReq {
			n, _, color := v.Unpack()
			return ContainReq{Count: n, Color: color}
		},
	)

	containReqs = parsec.Map(
		parsec.ThenIgnore(
			parsec.Or(parsec.SepBy1(containReq, parsec.String(", "), true), parsec.String("no other bags")),
			parsec.Char('.'),
		),
		func(v either.Either[[]ContainReq, string]) []ContainReq {
			return either.Fold(v,
				func(reqs []ContainReq) []ContainReq { return reqs },
				func(string) []ContainReq { return nil },
			)
		},
	)

	luggageRule = parsec.Then(parsec.ThenIgnore(bagColor, parsec.String(" contain ")), containReqs)

	luggageRules = parsec.Map(
		parsec.SepBy(luggageRule, parsec.Newline(), true),
		func(rules []parsec.Pair[string, []ContainReq]) LuggageRules {
			out := make(LuggageRules, len(rules))
			for _, r := range rules {
				out[r.First] = r.Second
			}
			return out
		},
	)
)

// Day7 is "Handy Haversacks".
func Day7() Problem {
	return &twoPart[LuggageRules, int, int]{
		day:    7,
		title:  "Day 7: Handy Haversacks",
		parser: luggageRules,
		partA: func(rules LuggageRules) (int, error) {
			return len(bagsContaining(buildCanContain(rules), targetBag)), nil
		},
		partB: func(rules LuggageRules) (int, error) {
			return countBagsInside(rules, targetBag), nil
		},
	}
}

// buildCanContain inverts the rules: color -> colors that may directly
// hold it.
func buildCanContain(rules LuggageRules) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for outer, reqs := range rules {
		for _, req := range reqs {
			if out[req.Color] == nil {
				out[req.Color] = make(map[string]bool)
			}
			out[req.Color][outer] = true
		}
	}
	return out
}

// bagsContaining returns every color that eventually holds color.
func bagsContaining(canContain map[string]map[string]bool, color string) map[string]bool {
	found := make(map[string]bool)
	queue := []string{color}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for holder := range canContain[c] {
			if !found[holder] {
				found[holder] = true
				queue = append(queue, holder)
			}
		}
	}
	return found
}

// countBagsInside returns how many bags a bag of the given color holds in
// total.
func countBagsInside(rules LuggageRules, color string) int {
	count := memo.Recursive(func(self func(string) int, c string) int {
		total := 0
		for _, req := range rules[c] {
			total += req.Count * (1 + self(req.Color))
		}
		return total
	})
	return count.Call(color)
}
