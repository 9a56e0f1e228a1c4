package puzzle

import (
	"strings"

	"github.com/corey/adco/internal/domain/parsec"
)

// PasswordLine is one "lo-hi c: password" entry of the day 2 input.
type PasswordLine struct {
	Lo, Hi   int
	Char     rune
	Password string
}

var (
	policyRange = parsec.Named(parsec.Then(parsec.ThenIgnore(parsec.Int(), parsec.Char('-')), parsec.Int()), "rangeParser")

	passwordLine = parsec.Named(parsec.Map(
		parsec.Series3(
			policyRange,
			parsec.ThenIgnore(parsec.IgnoreThen(parsec.Space(), parsec.AnyChar()), parsec.String(": ")),
			parsec.RestOfLine(),
		),
		func(v parsec.Tuple3[parsec.Pair[int, int], rune, string]) PasswordLine {
			r, c, pw := v.Unpack()
			return PasswordLine{Lo: r.First, Hi: r.Second, Char: c, Password: pw}
		},
	), "passwordLineParser")

	passwordFile = parsec.SepBy(passwordLine, parsec.Newline(), true)
)

// Day2 is "Password Philosophy".
func Day2() Problem {
	return &twoPart[[]PasswordLine, int, int]{
		day:    2,
		title:  "Day 2: Password Philosophy",
		parser: passwordFile,
		partA: func(lines []PasswordLine) (int, error) {
			return countValid(lines, PasswordLine.validCount), nil
		},
		partB: func(lines []PasswordLine) (int, error) {
			return countValid(lines, PasswordLine.validPositions), nil
		},
	}
}

func countValid(lines []PasswordLine, valid func(PasswordLine) bool) int {
	n := 0
	for _, l := range lines {
		if valid(l) {
			n++
		}
	}
	return n
}

// validCount: Char occurs between Lo and Hi times.
func (l PasswordLine) validCount() bool {
	n := strings.Count(l.Password, string(l.Char))
	return n >= l.Lo && n <= l.Hi
}

// validPositions: exactly one of the 1-based positions Lo and Hi holds Char.
func (l PasswordLine) validPositions() bool {
	pw := []rune(l.Password)
	i, j := l.Lo-1, l.Hi-1
	if i < 0 || i >= len(pw) || j < 0 || j >= len(pw) {
		return false
	}
	return (pw[i] == l.Char) != (pw[j] == l.Char)
}
