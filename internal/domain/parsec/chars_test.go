package parsec

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Character primitives
// =============================================================================

func TestChar(t *testing.T) {
	p := Char('a')
	parses(t, p, "a", 'a')

	err := failsWith(t, p, "b")
	assertFailure(t, err, 0, "charP(a)", "Non-matching character 'b' not 'a'")

	err = failsWith(t, p, "")
	assertFailure(t, err, 0, "charP(a)", "End of input reached")
}

func TestChar_Multibyte(t *testing.T) {
	p := Then(Char('é'), Char('x'))
	parses(t, p, "éx", Pair[rune, rune]{First: 'é', Second: 'x'})

	err := failsWith(t, p, "éy")
	assert.Equal(t, 2, err.Loc, "offsets are bytes")
}

func TestOneOf(t *testing.T) {
	p := OneOf('c', 'a', 'b')
	parses(t, p, "a", 'a')
	parses(t, p, "b", 'b')
	parses(t, p, "c", 'c')

	err := failsWith(t, p, "d")
	assertFailure(t, err, 0, "oneOfP([a, b, c])", "Non-matching character 'd' not in [a, b, c]")
	assert.Equal(t, p.String(), OneOfString("abcab").String())
}

func TestNoneOf(t *testing.T) {
	p := NoneOf('a', 'b', 'c')
	parses(t, p, "d", 'd')
	parses(t, p, "1", '1')

	err := failsWith(t, p, "a")
	assertFailure(t, err, 0, "noneOfP([a, b, c])", "Found disallowed character 'a'")
	assert.Equal(t, "noneOfP([,])", NoneOfString(",").String())
}

func TestSatisfy(t *testing.T) {
	p := Satisfy(func(r rune) bool { return r == 'q' })
	parses(t, p, "q", 'q')

	err := failsWith(t, p, "z")
	assertFailure(t, err, 0, "satisfyP", "Character 'z' did not satisfy condition")
}

func TestSpaces(t *testing.T) {
	p := Then(ThenIgnore(AnyChar(), Spaces()), AnyChar())
	parses(t, p, "d a", Pair[rune, rune]{First: 'd', Second: 'a'})
	parses(t, p, "xy", Pair[rune, rune]{First: 'x', Second: 'y'})
	parses(t, p, "x        y", Pair[rune, rune]{First: 'x', Second: 'y'})

	err := failsWith(t, p, "a")
	assertFailure(t, err, 1, "anyCharP", "End of input reached")
}

func TestSpace(t *testing.T) {
	p := Then(ThenIgnore(AnyChar(), Space()), AnyChar())
	parses(t, p, "d a", Pair[rune, rune]{First: 'd', Second: 'a'})

	err := failsWith(t, p, "xy")
	assertFailure(t, err, 1, "spaceP", "Character 'y' did not satisfy condition")

	err = failsWith(t, p, "x        y")
	assertFailure(t, err, 3, p.String(), "Input was remaining after parse")

	err = failsWith(t, p, "a")
	assertFailure(t, err, 1, "spaceP", "End of input reached")
}

func TestNewline(t *testing.T) {
	p := Then(ThenIgnore(AnyChar(), Newline()), AnyChar())
	parses(t, p, "d\na", Pair[rune, rune]{First: 'd', Second: 'a'})
	parses(t, p, "d\r\na", Pair[rune, rune]{First: 'd', Second: 'a'})

	err := failsWith(t, p, "xy")
	assertFailure(t, err, 1, "newlineP", "Neither charP(\n) nor stringP(\r\n) matched")
}

func TestUpperLower(t *testing.T) {
	upper := Then(AnyChar(), Upper())
	parses(t, upper, "xY", Pair[rune, rune]{First: 'x', Second: 'Y'})
	err := failsWith(t, upper, "xy")
	assertFailure(t, err, 1, "upperP", "Character 'y' did not satisfy condition")

	lower := Then(AnyChar(), Lower())
	parses(t, lower, "xy", Pair[rune, rune]{First: 'x', Second: 'y'})
	err = failsWith(t, lower, "xY")
	assertFailure(t, err, 1, "lowerP", "Character 'Y' did not satisfy condition")
}

// =============================================================================
// Multi-character primitives
// =============================================================================

func TestString(t *testing.T) {
	p := String("hello")
	parses(t, p, "hello", "hello")

	err := failsWith(t, p, "hela")
	assertFailure(t, err, 3, "stringP(hello)", `Non-matching character 'a' breaks match of string "hello"`)

	err = failsWith(t, p, "hello world")
	assertFailure(t, err, 5, "stringP(hello)", "Input was remaining after parse")

	err = failsWith(t, p, "hel")
	assertFailure(t, err, 3, "stringP(hello)", "End of input reached")
}

func TestInt(t *testing.T) {
	p := SepBy(Int(), Char(','), true)
	parses(t, p, "1,12,56", []int{1, 12, 56})
	parses(t, p, "1,-12,0", []int{1, -12, 0})

	err := failsWith(t, p, "12x")
	assertFailure(t, err, 2, p.String(), "Input was remaining after parse")

	err = failsWith(t, Int(), "")
	assertFailure(t, err, 0, "intP", "No digits found")

	err = failsWith(t, Int(), "-")
	assertFailure(t, err, 0, "intP", "No digits found")
}

func TestLong(t *testing.T) {
	parses(t, Long(), "9223372036854775807", int64(math.MaxInt64))
	parses(t, Long(), "-9223372036854775808", int64(math.MinInt64))
	parses(t, Long(), "007", int64(7))
}

func TestLong_ConversionFailureCarriesCause(t *testing.T) {
	err := failsWith(t, Long(), "99999999999999999999")
	assertFailure(t, err, 0, "longP", "Unable to parse int from collected digits 99999999999999999999")
	require.Error(t, err.Cause)
	assert.True(t, errors.Is(err, strconv.ErrRange))
	assert.Contains(t, err.Error(), "; strconv.ParseInt")

	// Non-ASCII decimal digits pass Digit but not strconv.
	err = failsWith(t, Long(), "١٢")
	assertFailure(t, err, 0, "longP", "Unable to parse int from collected digits ١٢")
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestRestOfLine(t *testing.T) {
	p := ThenIgnore(RestOfLine(), Many(AnyChar()))
	parses(t, p, "abcdef", "abcdef")
	parses(t, p, "abcdef\n", "abcdef")
	parses(t, p, "abcdef\r\n", "abcdef")
	parses(t, p, "", "")

	res, err := ParsePartial(RestOfLine(), "ab\ncd", 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", res.Value)
	assert.Equal(t, 2, res.Next)
}

// =============================================================================
// Keyword
// =============================================================================

func TestKeyword(t *testing.T) {
	p := Keyword("nop", "acc", "jmp")
	parses(t, p, "jmp", "jmp")
	parses(t, p, "acc", "acc")

	err := failsWith(t, p, "xyz")
	assertFailure(t, err, 0, "keywordP([nop, acc, jmp])", "No keyword of [nop, acc, jmp] found")

	err = failsWith(t, p, "")
	assertFailure(t, err, 0, "keywordP([nop, acc, jmp])", "End of input reached")
}

func TestKeyword_LongestAtCursor(t *testing.T) {
	p := Keyword("in", "int")
	parses(t, p, "int", "int")
	parses(t, p, "in", "in")

	res, err := ParsePartial(p, "xinteger", 1)
	require.NoError(t, err)
	assert.Equal(t, "int", res.Value)
	assert.Equal(t, 4, res.Next)

	// A keyword later in the window is not a match at the cursor.
	err2 := failsWith(t, p, "xin")
	assert.Equal(t, 0, err2.Loc)
}

func TestKeyword_Panics(t *testing.T) {
	assert.Panics(t, func() { Keyword() })
	assert.Panics(t, func() { Keyword("a", "") })
}
