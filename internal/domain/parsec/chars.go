package parsec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/corey/adco/internal/domain/either"
)

// nextRune decodes the rune at pos, failing at end of input.
func nextRune(input string, pos int, parser string) (rune, int, *Error) {
	if pos >= len(input) {
		return 0, 0, newError(input, pos, parser, "End of input reached")
	}
	r, w := utf8.DecodeRuneInString(input[pos:])
	return r, w, nil
}

// runeSet is a fixed character class.
type runeSet struct {
	members map[rune]struct{}
	label   string // sorted members, "[a, b, c]"
}

func newRuneSet(cs []rune) runeSet {
	members := make(map[rune]struct{}, len(cs))
	for _, c := range cs {
		members[c] = struct{}{}
	}
	sorted := make([]rune, 0, len(members))
	for c := range members {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = string(c)
	}
	return runeSet{members: members, label: "[" + strings.Join(parts, ", ") + "]"}
}

func (s runeSet) contains(c rune) bool {
	_, ok := s.members[c]
	return ok
}

type charParser struct {
	c    rune
	name string
}

// Char matches exactly c.
func Char(c rune) Parser[rune] {
	return &charParser{c: c, name: fmt.Sprintf("charP(%c)", c)}
}

func (p *charParser) String() string { return p.name }

func (p *charParser) parse(input string, pos int) (PartialParse[rune], *Error) {
	x, w, err := nextRune(input, pos, p.name)
	if err != nil {
		return PartialParse[rune]{}, err
	}
	if x != p.c {
		return PartialParse[rune]{}, newError(input, pos, p.name,
			fmt.Sprintf("Non-matching character '%c' not '%c'", x, p.c))
	}
	return PartialParse[rune]{Value: x, Next: pos + w}, nil
}

type anyCharParser struct{}

// AnyChar matches any single character.
func AnyChar() Parser[rune] {
	return anyCharParser{}
}

func (anyCharParser) String() string { return "anyCharP" }

func (p anyCharParser) parse(input string, pos int) (PartialParse[rune], *Error) {
	x, w, err := nextRune(input, pos, p.String())
	if err != nil {
		return PartialParse[rune]{}, err
	}
	return PartialParse[rune]{Value: x, Next: pos + w}, nil
}

type satisfyParser struct {
	f func(rune) bool
}

// Satisfy matches one character for which f returns true.
func Satisfy(f func(rune) bool) Parser[rune] {
	return &satisfyParser{f: f}
}

func (p *satisfyParser) String() string { return "satisfyP" }

func (p *satisfyParser) parse(input string, pos int) (PartialParse[rune], *Error) {
	x, w, err := nextRune(input, pos, p.String())
	if err != nil {
		return PartialParse[rune]{}, err
	}
	if !p.f(x) {
		return PartialParse[rune]{}, newError(input, pos, p.String(),
			fmt.Sprintf("Character '%c' did not satisfy condition", x))
	}
	return PartialParse[rune]{Value: x, Next: pos + w}, nil
}

type oneOfParser struct {
	set  runeSet
	name string
}

// OneOf matches one character from cs.
func OneOf(cs ...rune) Parser[rune] {
	set := newRuneSet(cs)
	return &oneOfParser{set: set, name: "oneOfP(" + set.label + ")"}
}

// OneOfString matches one character from s.
func OneOfString(s string) Parser[rune] {
	return OneOf([]rune(s)...)
}

func (p *oneOfParser) String() string { return p.name }

func (p *oneOfParser) parse(input string, pos int) (PartialParse[rune], *Error) {
	x, w, err := nextRune(input, pos, p.name)
	if err != nil {
		return PartialParse[rune]{}, err
	}
	if !p.set.contains(x) {
		return PartialParse[rune]{}, newError(input, pos, p.name,
			fmt.Sprintf("Non-matching character '%c' not in %s", x, p.set.label))
	}
	return PartialParse[rune]{Value: x, Next: pos + w}, nil
}

type noneOfParser struct {
	set  runeSet
	name string
}

// NoneOf matches one character that is not in cs.
func NoneOf(cs ...rune) Parser[rune] {
	set := newRuneSet(cs)
	return &noneOfParser{set: set, name: "noneOfP(" + set.label + ")"}
}

// NoneOfString matches one character that does not occur in s.
func NoneOfString(s string) Parser[rune] {
	return NoneOf([]rune(s)...)
}

func (p *noneOfParser) String() string { return p.name }

func (p *noneOfParser) parse(input string, pos int) (PartialParse[rune], *Error) {
	x, w, err := nextRune(input, pos, p.name)
	if err != nil {
		return PartialParse[rune]{}, err
	}
	if p.set.contains(x) {
		return PartialParse[rune]{}, newError(input, pos, p.name,
			fmt.Sprintf("Found disallowed character '%c'", x))
	}
	return PartialParse[rune]{Value: x, Next: pos + w}, nil
}

type stringParser struct {
	s    string
	name string
}

// String matches the literal s. A mismatch is reported at the first
// differing character.
func String(s string) Parser[string] {
	return &stringParser{s: s, name: "stringP(" + s + ")"}
}

func (p *stringParser) String() string { return p.name }

func (p *stringParser) parse(input string, pos int) (PartialParse[string], *Error) {
	cur := pos
	for _, c := range p.s {
		x, w, err := nextRune(input, cur, p.name)
		if err != nil {
			return PartialParse[string]{}, err
		}
		if x != c {
			return PartialParse[string]{}, newError(input, cur, p.name,
				fmt.Sprintf("Non-matching character '%c' breaks match of string \"%s\"", x, p.s))
		}
		cur += w
	}
	return PartialParse[string]{Value: p.s, Next: cur}, nil
}

// signedDigits is an optional minus sign followed by any number of digits.
var signedDigits = Then(Optional(Char('-')), Many(Digit()))

type integerParser struct {
	name    string
	bitSize int
}

// Int matches an optionally negative decimal integer that fits in an int.
func Int() Parser[int] {
	digits := &integerParser{name: "intP", bitSize: strconv.IntSize}
	return Named(Map[int64](digits, func(n int64) int { return int(n) }), "intP")
}

// Long matches an optionally negative decimal integer that fits in an int64.
func Long() Parser[int64] {
	return &integerParser{name: "longP", bitSize: 64}
}

func (p *integerParser) String() string { return p.name }

func (p *integerParser) parse(input string, pos int) (PartialParse[int64], *Error) {
	res, err := signedDigits.parse(input, pos)
	if err != nil {
		return PartialParse[int64]{}, err.attributedTo(p.name)
	}
	minus, digits := res.Value.First, res.Value.Second
	if len(digits) == 0 {
		return PartialParse[int64]{}, newError(input, pos, p.name, "No digits found")
	}

	text := string(digits)
	if minus.IsSome() {
		text = "-" + text
	}
	n, cerr := strconv.ParseInt(text, 10, p.bitSize)
	if cerr != nil {
		// Digit covers every Unicode decimal digit; strconv only takes ASCII.
		return PartialParse[int64]{}, &Error{
			Input:  input,
			Loc:    pos,
			Parser: p.name,
			Msg:    "Unable to parse int from collected digits " + string(digits),
			Cause:  cerr,
		}
	}
	return PartialParse[int64]{Value: n, Next: res.Next}, nil
}

type restOfLineParser struct{}

// RestOfLine consumes everything up to, not including, the next end of
// line or the end of input. It never fails.
func RestOfLine() Parser[string] {
	return restOfLineParser{}
}

func (restOfLineParser) String() string { return "restOfLineP" }

func (restOfLineParser) parse(input string, pos int) (PartialParse[string], *Error) {
	i := pos
	for i < len(input) {
		if _, err := newline.parse(input, i); err == nil {
			break
		}
		_, w := utf8.DecodeRuneInString(input[i:])
		i += w
	}
	return PartialParse[string]{Value: input[pos:i], Next: i}, nil
}

var newline = Newline()

// Newline matches "\n" or "\r\n" and produces '\n'.
func Newline() Parser[rune] {
	eol := Or(Char('\n'), String("\r\n"))
	return Named(Map(eol, func(either.Either[rune, string]) rune { return '\n' }), "newlineP")
}

// Space matches one whitespace character.
func Space() Parser[rune] {
	return Named(Satisfy(unicode.IsSpace), "spaceP")
}

// Spaces matches any run of whitespace, including none.
func Spaces() Parser[string] {
	return Named(Map(Many(Satisfy(unicode.IsSpace)), func(rs []rune) string { return string(rs) }), "spacesP")
}

// Upper matches one upper-case letter.
func Upper() Parser[rune] {
	return Named(Satisfy(unicode.IsUpper), "upperP")
}

// Lower matches one lower-case letter.
func Lower() Parser[rune] {
	return Named(Satisfy(unicode.IsLower), "lowerP")
}

// Digit matches one decimal digit.
func Digit() Parser[rune] {
	return Named(Satisfy(unicode.IsDigit), "digitP")
}
