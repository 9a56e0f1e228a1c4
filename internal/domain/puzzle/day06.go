package puzzle

import "github.com/corey/adco/internal/domain/parsec"

// Answers is the set of questions one person answered "yes" to.
type Answers map[rune]bool

// Group is the answers of everyone in one travel group.
type Group []Answers

var (
	personAnswers = parsec.Map(
		parsec.ThenIgnore(parsec.Many1(parsec.NoneOf('\n')), parsec.Optional(parsec.Newline())),
		func(rs []rune) Answers {
			a := make(Answers, len(rs))
			for _, r := range rs {
				a[r] = true
			}
			return a
		},
	)

	groupAnswers = parsec.Map(parsec.Many1(personAnswers), func(as []Answers) Group { return as })

	customsForms = parsec.SepBy(groupAnswers, parsec.Newline(), true)
)

// Day6 is "Custom Customs".
func Day6() Problem {
	return &twoPart[[]Group, int, int]{
		day:    6,
		title:  "Day 6: Custom Customs",
		parser: customsForms,
		partA: func(groups []Group) (int, error) {
			return sumSizes(groups, Group.anyone), nil
		},
		partB: func(groups []Group) (int, error) {
			return sumSizes(groups, Group.everyone), nil
		},
	}
}

func sumSizes(groups []Group, combine func(Group) Answers) int {
	total := 0
	for _, g := range groups {
		total += len(combine(g))
	}
	return total
}

// anyone is the union of the group's answers.
func (g Group) anyone() Answers {
	union := Answers{}
	for _, a := range g {
		for q := range a {
			union[q] = true
		}
	}
	return union
}

// everyone is the intersection of the group's answers.
func (g Group) everyone() Answers {
	if len(g) == 0 {
		return Answers{}
	}
	common := Answers{}
	for q := range g[0] {
		common[q] = true
	}
	for _, a := range g[1:] {
		for q := range common {
			if !a[q] {
				delete(common, q)
			}
		}
	}
	return common
}
