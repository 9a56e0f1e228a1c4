package parsec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// windowSize is the most input characters shown in a rendered Error.
const windowSize = 20

// Error is a parse failure.
//
// Parser is the identity of the parser the failure is attributed to: the
// structural label of the failing combinator unless a Named wrapper
// rewrote it. Loc is a byte offset within [0, len(Input)].
type Error struct {
	Input  string
	Loc    int
	Parser string
	Msg    string
	Cause  error
}

func newError(input string, loc int, parser, msg string) *Error {
	return &Error{Input: input, Loc: loc, Parser: parser, Msg: msg}
}

// attributedTo returns a copy of e reported against a different parser.
func (e *Error) attributedTo(parser string) *Error {
	c := *e
	c.Parser = parser
	return &c
}

// Error renders e as
//
//	Error parsing "<window>" at location <loc>[ (<offset>)] using <parser>[: <msg>][; <cause>]
//
// Inputs longer than 20 characters are clipped to a 20 character window
// around Loc. When the window does not start at the beginning of the input
// the offset of Loc within the window is given in parentheses.
func (e *Error) Error() string {
	window, loc := e.window()

	var b strings.Builder
	b.WriteString(`Error parsing "`)
	b.WriteString(window)
	b.WriteString(`" at location `)
	b.WriteString(loc)
	b.WriteString(" using ")
	b.WriteString(e.Parser)
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Cause != nil {
		b.WriteString("; ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) window() (string, string) {
	in := e.Input
	n := len(in)
	loc := strconv.Itoa(e.Loc)
	if n <= windowSize {
		return in, loc
	}

	half := windowSize / 2
	switch {
	case e.Loc > n:
		return in[:windowSize] + "...", loc + " (out of range somehow)"
	case e.Loc-half < 0:
		return in[:windowSize] + "...", loc
	case e.Loc+half >= n:
		return "..." + in[n-windowSize:], fmt.Sprintf("%s (%d)", loc, e.Loc-(n-windowSize))
	default:
		return "..." + in[e.Loc-half:e.Loc+half] + "...", fmt.Sprintf("%s (%d)", loc, half)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Position is a zero-based line and column, with the byte offset it was
// computed from. Columns count runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Position returns the line and column of e.Loc in e.Input.
func (e *Error) Position() Position {
	return PositionOf(e.Input, e.Loc)
}

// PositionOf computes the line and column of a byte offset. Lines end at
// "\n"; a preceding "\r" is part of the previous line.
func PositionOf(input string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	line := strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[start:]),
	}
}
