package parsec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Shared assertions for parser tests.
// =============================================================================

// parses asserts that p consumes all of input and produces want.
func parses[T any](t *testing.T, p Parser[T], input string, want T) {
	t.Helper()
	got, err := Parse(p, input)
	require.NoError(t, err, "parsing %q with %s", input, p)
	assert.Equal(t, want, got, "parsing %q with %s", input, p)
}

// failsWith parses input with p and returns the failure as *Error.
func failsWith[T any](t *testing.T, p Parser[T], input string) *Error {
	t.Helper()
	_, err := Parse(p, input)
	require.Error(t, err, "expected %s to fail on %q", p, input)
	var perr *Error
	require.True(t, errors.As(err, &perr), "expected *Error, got %T", err)
	assert.Equal(t, input, perr.Input, "failure should carry the input")
	return perr
}

// assertFailure checks location, identity and message of a failure.
func assertFailure(t *testing.T, err *Error, loc int, parser, msg string) {
	t.Helper()
	assert.Equal(t, loc, err.Loc, "loc")
	assert.Equal(t, parser, err.Parser, "parser")
	assert.Equal(t, msg, err.Msg, "msg")
}

// =============================================================================
// Driver
// =============================================================================

func TestParse_TrailingInputAttributedToRoot(t *testing.T) {
	p := AnyChar()
	parses(t, p, "a", 'a')
	parses(t, p, "b", 'b')

	err := failsWith(t, p, "ba")
	assertFailure(t, err, 1, "anyCharP", "Input was remaining after parse")
}

func TestParse_RootFailureUnmodified(t *testing.T) {
	err := failsWith(t, Then(AnyChar(), Char(',')), "xy")
	assertFailure(t, err, 1, "charP(,)", "Non-matching character 'y' not ','")
}

func TestParse_IsRepeatable(t *testing.T) {
	p := SepBy(Int(), Char(','), true)
	first, err1 := Parse(p, "1,12,56")
	second, err2 := Parse(p, "1,12,56")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, ferr1 := Parse(p, "1,x")
	_, ferr2 := Parse(p, "1,x")
	assert.Equal(t, ferr1, ferr2)
}

func TestParsePartial(t *testing.T) {
	res, err := ParsePartial(Int(), "ab123cd", 2)
	require.NoError(t, err)
	assert.Equal(t, 123, res.Value)
	assert.Equal(t, 5, res.Next)

	_, err = ParsePartial(Int(), "ab", -1)
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assertFailure(t, perr, 0, "intP", "Position less than 0")

	_, err = ParsePartial(Int(), "ab", 3)
	require.True(t, errors.As(err, &perr))
	assertFailure(t, perr, 2, "intP", "Position beyond end of input")

	rol, err := ParsePartial(RestOfLine(), "ab", 2)
	require.NoError(t, err)
	assert.Equal(t, "", rol.Value)
	assert.Equal(t, 2, rol.Next)
}

// =============================================================================
// Map, FlatMap, Lift, Failure, Named
// =============================================================================

func TestMap(t *testing.T) {
	p := Map(Char('a'), func(r rune) int { return int(r) })
	parses(t, p, "a", 97)

	err := failsWith(t, p, "b")
	assertFailure(t, err, 0, "charP(a)", "Non-matching character 'b' not 'a'")
	assert.Equal(t, "mapP(charP(a), f)", p.String())
}

func TestFlatMap(t *testing.T) {
	p := FlatMap(AnyChar(), func(r rune) Parser[rune] {
		if r == 'a' {
			return Char('b')
		}
		return Char('c')
	})
	parses(t, p, "ab", 'b')
	parses(t, p, "cc", 'c')

	err := failsWith(t, p, "ac")
	assertFailure(t, err, 1, "charP(b)", "Non-matching character 'c' not 'b'")
}

func TestLift(t *testing.T) {
	f := func(n int) Parser[rune] { return Char(rune('0' + n)) }
	viaLift := FlatMap(Lift(1), f)
	direct := f(1)

	parses(t, viaLift, "1", '1')
	parses(t, direct, "1", '1')

	for _, p := range []Parser[rune]{viaLift, direct} {
		err := failsWith(t, p, "2")
		assertFailure(t, err, 0, "charP(1)", "Non-matching character '2' not '1'")
	}
	assert.Equal(t, "liftP(1)", Lift(1).String())
}

func TestFailure(t *testing.T) {
	p := FlatMap(Char('1'), func(rune) Parser[int] {
		return Failure[int]("Hoping not to parse a 1")
	})
	err := failsWith(t, p, "1")
	assertFailure(t, err, 1, "failureP", "Hoping not to parse a 1")
}

func TestNamed(t *testing.T) {
	p := Char('1')
	named := Named(p, "parse1")

	_, err := Parse(p, "2")
	require.Error(t, err)
	assert.Equal(t, `Error parsing "2" at location 0 using charP(1): Non-matching character '2' not '1'`, err.Error())

	_, err = Parse(named, "2")
	require.Error(t, err)
	assert.Equal(t, `Error parsing "2" at location 0 using parse1: Non-matching character '2' not '1'`, err.Error())
}

func TestNamed_KeepsLocationMessageAndCause(t *testing.T) {
	inner := failsWith(t, Long(), "99999999999999999999")
	outer := failsWith(t, Named(Long(), "big"), "99999999999999999999")

	assert.Equal(t, "big", outer.Parser)
	assert.Equal(t, inner.Loc, outer.Loc)
	assert.Equal(t, inner.Msg, outer.Msg)
	assert.Equal(t, inner.Cause, outer.Cause)
}
