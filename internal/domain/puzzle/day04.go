package puzzle

import (
	"fmt"

	"github.com/corey/adco/internal/domain/either"
	"github.com/corey/adco/internal/domain/parsec"
)

// Passport is one blank-line separated record of key:value fields.
type Passport struct {
	Fields map[string]string
}

var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

// ValidationError names the first passport field that failed a rule.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

var (
	passportDatum = parsec.Map(parsec.Many1(parsec.NoneOf(':', ' ', '\n')), func(rs []rune) string { return string(rs) })

	passportField = parsec.Then(parsec.ThenIgnore(passportDatum, parsec.Char(':')), passportDatum)

	passport = parsec.Map(
		parsec.SepBy(passportField, parsec.Or(parsec.Space(), parsec.Newline()), true),
		func(kvs []parsec.Pair[string, string]) Passport {
			fields := make(map[string]string, len(kvs))
			for _, kv := range kvs {
				fields[kv.First] = kv.Second
			}
			return Passport{Fields: fields}
		},
	)

	passportBatch = parsec.SepBy(passport, parsec.Newline(), true)
)

// Field value grammars.
var (
	heightValue = parsec.Then(parsec.Int(), parsec.Choice(parsec.String("cm"), parsec.String("in")))
	hairValue   = parsec.IgnoreThen(parsec.Char('#'), parsec.Many1(parsec.OneOfString("0123456789abcdef")))
	eyeValue    = parsec.Keyword("amb", "blu", "brn", "gry", "grn", "hzl", "oth")
	pidValue    = parsec.Many1(parsec.Digit())
)

// Day4 is "Passport Processing".
func Day4() Problem {
	return &twoPart[[]Passport, int, int]{
		day:    4,
		title:  "Day 4: Passport Processing",
		parser: passportBatch,
		partA: func(ps []Passport) (int, error) {
			return countPassports(ps, Passport.HasRequiredFields), nil
		},
		partB: func(ps []Passport) (int, error) {
			return countPassports(ps, func(pp Passport) bool { return pp.Validate() == nil }), nil
		},
	}
}

func countPassports(ps []Passport, ok func(Passport) bool) int {
	n := 0
	for _, pp := range ps {
		if ok(pp) {
			n++
		}
	}
	return n
}

// HasRequiredFields reports whether every required field is present; cid
// is optional.
func (pp Passport) HasRequiredFields() bool {
	for _, f := range requiredFields {
		if _, ok := pp.Fields[f]; !ok {
			return false
		}
	}
	return true
}

type fieldCheck = either.Either[*ValidationError, string]

// Validate applies the field rules in order and returns the first
// violation, or nil.
func (pp Passport) Validate() error {
	rules := []func() fieldCheck{
		func() fieldCheck { return pp.number("byr", 1920, 2002) },
		func() fieldCheck { return pp.number("iyr", 2010, 2020) },
		func() fieldCheck { return pp.number("eyr", 2020, 2030) },
		func() fieldCheck { return pp.height("hgt") },
		func() fieldCheck { return pp.hairColor("hcl") },
		func() fieldCheck { return pp.eyeColor("ecl") },
		func() fieldCheck { return pp.passportID("pid") },
	}
	res := either.Traverse(rules, func(rule func() fieldCheck) fieldCheck { return rule() })
	if verr, failed := res.LeftValue(); failed {
		return verr
	}
	return nil
}

func (pp Passport) required(name string) fieldCheck {
	v, ok := pp.Fields[name]
	if !ok {
		return either.Left[*ValidationError, string](&ValidationError{Field: name, Msg: "required field"})
	}
	return either.Right[*ValidationError](v)
}

// parsed checks field against grammar g, then against accept.
func parsed[T any](pp Passport, name string, g parsec.Parser[T], syntaxMsg string, accept func(T) string) fieldCheck {
	return either.FlatMap(pp.required(name), func(field string) fieldCheck {
		v, err := parsec.Parse(g, field)
		if err != nil {
			return either.Left[*ValidationError, string](&ValidationError{Field: name, Msg: syntaxMsg})
		}
		if msg := accept(v); msg != "" {
			return either.Left[*ValidationError, string](&ValidationError{Field: name, Msg: msg})
		}
		return either.Right[*ValidationError](field)
	})
}

func inRange(n, lo, hi int) string {
	if n < lo || n > hi {
		return "not in range"
	}
	return ""
}

func (pp Passport) number(name string, lo, hi int) fieldCheck {
	return parsed(pp, name, parsec.Int(), "not an integer", func(n int) string {
		return inRange(n, lo, hi)
	})
}

func (pp Passport) height(name string) fieldCheck {
	return parsed(pp, name, heightValue, "not a valid height", func(h parsec.Pair[int, string]) string {
		if h.Second == "cm" {
			return inRange(h.First, 150, 193)
		}
		return inRange(h.First, 59, 76)
	})
}

func (pp Passport) hairColor(name string) fieldCheck {
	return parsed(pp, name, hairValue, "not a valid hair color", func(hex []rune) string {
		if len(hex) != 6 {
			return "not a valid hair color"
		}
		return ""
	})
}

func (pp Passport) eyeColor(name string) fieldCheck {
	return parsed(pp, name, eyeValue, "not a valid eye color", func(string) string { return "" })
}

func (pp Passport) passportID(name string) fieldCheck {
	return parsed(pp, name, pidValue, "not a valid passport id", func(digits []rune) string {
		if len(digits) != 9 {
			return "not a valid passport id"
		}
		return ""
	})
}
