// Package parsec is the parser-combinator engine every puzzle-input parser
// is built from.
//
// A grammar is assembled once from primitives (Char, String, Int, ...) and
// combinators (Then, Or, Many, SepBy, Series3, ...) and then run with Parse
// on as many inputs as needed:
//
//	ratio := parsec.Series3(parsec.Int(), parsec.Char(':'), parsec.Int())
//	t, err := parsec.Parse(ratio, "15:18") // t.V1 == 15, t.V3 == 18
//
// Parse requires the whole input to be consumed. Failures are returned as
// *Error values carrying the input, the offset of the failure and the
// identity of the parser that reported it; see Error for the rendering.
//
// Parsers are immutable. One grammar may be used from many goroutines at
// once. Repetition combinators loop rather than recurse, so stack depth is
// bounded by grammar nesting, not by input length.
//
// Offsets are byte offsets into the input. Character primitives decode a
// single UTF-8 rune.
package parsec

import "fmt"

// Parser consumes a prefix of its input and produces a T, or fails.
// The set of parser kinds is closed; build parsers with the constructors
// in this package.
type Parser[T any] interface {
	// parse runs the parser at pos. On success the returned Next is
	// never less than pos and never greater than len(input).
	parse(input string, pos int) (PartialParse[T], *Error)

	// String returns the parser identity used in diagnostics.
	String() string
}

// PartialParse is a successful match: the produced value and the offset
// just past what was consumed.
type PartialParse[T any] struct {
	Value T
	Next  int
}

// Parse runs p over the whole of input.
// If p succeeds without consuming everything, the failure is reported at
// the first unconsumed offset and attributed to p itself.
func Parse[T any](p Parser[T], input string) (T, error) {
	var zero T
	res, err := p.parse(input, 0)
	if err != nil {
		return zero, err
	}
	if res.Next != len(input) {
		return zero, newError(input, res.Next, p.String(), "Input was remaining after parse")
	}
	return res.Value, nil
}

// ParsePartial runs p once at pos without requiring the rest of the input
// to be consumed.
func ParsePartial[T any](p Parser[T], input string, pos int) (PartialParse[T], error) {
	switch {
	case pos < 0:
		return PartialParse[T]{}, newError(input, 0, p.String(), "Position less than 0")
	case pos > len(input):
		return PartialParse[T]{}, newError(input, len(input), p.String(), "Position beyond end of input")
	}
	res, err := p.parse(input, pos)
	if err != nil {
		return PartialParse[T]{}, err
	}
	return res, nil
}

type liftParser[T any] struct {
	v    T
	name string
}

// Lift returns a parser that consumes nothing and always produces v.
func Lift[T any](v T) Parser[T] {
	return &liftParser[T]{v: v, name: fmt.Sprintf("liftP(%v)", v)}
}

func (p *liftParser[T]) String() string { return p.name }

func (p *liftParser[T]) parse(input string, pos int) (PartialParse[T], *Error) {
	return PartialParse[T]{Value: p.v, Next: pos}, nil
}

type failureParser[T any] struct {
	msg string
}

// Failure returns a parser that always fails at the current position
// with msg.
func Failure[T any](msg string) Parser[T] {
	return &failureParser[T]{msg: msg}
}

func (p *failureParser[T]) String() string { return "failureP" }

func (p *failureParser[T]) parse(input string, pos int) (PartialParse[T], *Error) {
	return PartialParse[T]{}, newError(input, pos, p.String(), p.msg)
}

type mapParser[T, S any] struct {
	p    Parser[T]
	f    func(T) S
	name string
}

// Map transforms the value produced by p. Failures pass through unchanged.
func Map[T, S any](p Parser[T], f func(T) S) Parser[S] {
	return &mapParser[T, S]{p: p, f: f, name: "mapP(" + p.String() + ", f)"}
}

func (p *mapParser[T, S]) String() string { return p.name }

func (p *mapParser[T, S]) parse(input string, pos int) (PartialParse[S], *Error) {
	res, err := p.p.parse(input, pos)
	if err != nil {
		return PartialParse[S]{}, err
	}
	return PartialParse[S]{Value: p.f(res.Value), Next: res.Next}, nil
}

type flatMapParser[T, S any] struct {
	p    Parser[T]
	f    func(T) Parser[S]
	name string
}

// FlatMap runs p, then runs the parser chosen by f from p's value at the
// position where p stopped.
func FlatMap[T, S any](p Parser[T], f func(T) Parser[S]) Parser[S] {
	return &flatMapParser[T, S]{p: p, f: f, name: "flatMapP(" + p.String() + ", f)"}
}

func (p *flatMapParser[T, S]) String() string { return p.name }

func (p *flatMapParser[T, S]) parse(input string, pos int) (PartialParse[S], *Error) {
	res, err := p.p.parse(input, pos)
	if err != nil {
		return PartialParse[S]{}, err
	}
	return p.f(res.Value).parse(input, res.Next)
}

type namedParser[T any] struct {
	p    Parser[T]
	name string
}

// Named gives p a new identity. Any failure coming out of p is reported as
// coming from name; its location, message and cause are kept.
func Named[T any](p Parser[T], name string) Parser[T] {
	return &namedParser[T]{p: p, name: name}
}

func (p *namedParser[T]) String() string { return p.name }

func (p *namedParser[T]) parse(input string, pos int) (PartialParse[T], *Error) {
	res, err := p.p.parse(input, pos)
	if err != nil {
		return PartialParse[T]{}, err.attributedTo(p.name)
	}
	return res, nil
}
