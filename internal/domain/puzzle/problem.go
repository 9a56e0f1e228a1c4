// Package puzzle holds the Advent of Code 2020 solvers. Every input grammar
// is built from parsec.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/corey/adco/internal/domain/parsec"
)

// Problem is one day's puzzle. Answers are returned as display strings.
type Problem interface {
	Day() int
	Title() string
	PartA(input string) (string, error)
	PartB(input string) (string, error)
	// Check runs only the input grammar.
	Check(input string) error
}

// Part selects one half of a Problem.
type Part string

const (
	PartA Part = "a"
	PartB Part = "b"
)

// ParsePart accepts "a" or "b", in either case.
func ParsePart(s string) (Part, error) {
	switch Part(strings.ToLower(s)) {
	case PartA:
		return PartA, nil
	case PartB:
		return PartB, nil
	}
	return "", fmt.Errorf("unknown part %q (want a or b)", s)
}

// Solve runs the selected part of p.
func Solve(p Problem, part Part, input string) (string, error) {
	switch part {
	case PartA:
		return p.PartA(input)
	case PartB:
		return p.PartB(input)
	}
	return "", fmt.Errorf("unknown part %q", part)
}

// Error is a puzzle failure: bad input or no answer.
type Error struct {
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + "; caused by: " + e.Cause.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

func errorf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// NormalizeInput turns CRLF line endings into LF and drops one trailing
// newline, so a file and the same text typed on stdin parse alike.
func NormalizeInput(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimSuffix(input, "\n")
}

// twoPart pairs a day's grammar with its two solvers.
type twoPart[I, A, B any] struct {
	day    int
	title  string
	parser parsec.Parser[I]
	partA  func(I) (A, error)
	partB  func(I) (B, error)
}

func (p *twoPart[I, A, B]) Day() int      { return p.day }
func (p *twoPart[I, A, B]) Title() string { return p.title }

func (p *twoPart[I, A, B]) parse(input string) (I, error) {
	v, err := parsec.Parse(p.parser, NormalizeInput(input))
	if err != nil {
		var zero I
		return zero, &Error{Msg: "Error parsing input", Cause: err}
	}
	return v, nil
}

func (p *twoPart[I, A, B]) Check(input string) error {
	_, err := p.parse(input)
	return err
}

func (p *twoPart[I, A, B]) PartA(input string) (string, error) {
	return run(p, input, p.partA)
}

func (p *twoPart[I, A, B]) PartB(input string) (string, error) {
	return run(p, input, p.partB)
}

func run[I, A, B, O any](p *twoPart[I, A, B], input string, solve func(I) (O, error)) (string, error) {
	in, err := p.parse(input)
	if err != nil {
		return "", err
	}
	out, err := solve(in)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(out), nil
}
