package parsec

import (
	"strings"

	"github.com/corey/adco/internal/domain/either"
	"github.com/corey/adco/internal/domain/option"
)

// Pair is the value produced by Then.
type Pair[T, S any] struct {
	First  T
	Second S
}

type thenParser[T, S any] struct {
	p    Parser[T]
	q    Parser[S]
	name string
}

// Then runs p and then q where p stopped, producing both values.
// A failure of either side is returned as is.
func Then[T, S any](p Parser[T], q Parser[S]) Parser[Pair[T, S]] {
	return &thenParser[T, S]{p: p, q: q, name: "(" + p.String() + " + " + q.String() + ")"}
}

func (p *thenParser[T, S]) String() string { return p.name }

func (p *thenParser[T, S]) parse(input string, pos int) (PartialParse[Pair[T, S]], *Error) {
	r1, err := p.p.parse(input, pos)
	if err != nil {
		return PartialParse[Pair[T, S]]{}, err
	}
	r2, err := p.q.parse(input, r1.Next)
	if err != nil {
		return PartialParse[Pair[T, S]]{}, err
	}
	return PartialParse[Pair[T, S]]{Value: Pair[T, S]{First: r1.Value, Second: r2.Value}, Next: r2.Next}, nil
}

// IgnoreThen runs p then q and keeps q's value.
func IgnoreThen[T, S any](p Parser[T], q Parser[S]) Parser[S] {
	return Map(Then(p, q), func(v Pair[T, S]) S { return v.Second })
}

// ThenIgnore runs p then q and keeps p's value.
func ThenIgnore[T, S any](p Parser[T], q Parser[S]) Parser[T] {
	return Map(Then(p, q), func(v Pair[T, S]) T { return v.First })
}

// Between runs open, p and close in order and keeps p's value.
func Between[T, O, C any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	return Named(ThenIgnore(IgnoreThen(open, p), close), "betweenP")
}

type choiceParser[T any] struct {
	ps   []Parser[T]
	name string
}

// Choice tries each parser in order from the same position and returns the
// first success. Individual failures are discarded.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	names := make([]string, len(ps))
	for i, p := range ps {
		if p == nil {
			panic("parsec: Choice with nil parser")
		}
		names[i] = p.String()
	}
	return &choiceParser[T]{
		ps:   append([]Parser[T](nil), ps...),
		name: "choice([" + strings.Join(names, ", ") + "])",
	}
}

func (p *choiceParser[T]) String() string { return p.name }

func (p *choiceParser[T]) parse(input string, pos int) (PartialParse[T], *Error) {
	for _, alt := range p.ps {
		if res, err := alt.parse(input, pos); err == nil {
			return res, nil
		}
	}
	return PartialParse[T]{}, newError(input, pos, p.name, "None of the choices matched")
}

type orParser[T, S any] struct {
	p    Parser[T]
	q    Parser[S]
	name string
}

// Or tries p, and q from the same position if p fails. The result records
// which side matched: Left for p, Right for q.
func Or[T, S any](p Parser[T], q Parser[S]) Parser[either.Either[T, S]] {
	return &orParser[T, S]{p: p, q: q, name: "(" + p.String() + " or " + q.String() + ")"}
}

func (p *orParser[T, S]) String() string { return p.name }

func (p *orParser[T, S]) parse(input string, pos int) (PartialParse[either.Either[T, S]], *Error) {
	if r, err := p.p.parse(input, pos); err == nil {
		return PartialParse[either.Either[T, S]]{Value: either.Left[T, S](r.Value), Next: r.Next}, nil
	}
	if r, err := p.q.parse(input, pos); err == nil {
		return PartialParse[either.Either[T, S]]{Value: either.Right[T](r.Value), Next: r.Next}, nil
	}
	return PartialParse[either.Either[T, S]]{}, newError(input, pos, p.name,
		"Neither "+p.p.String()+" nor "+p.q.String()+" matched")
}

type optionalParser[T any] struct {
	p    Parser[T]
	name string
}

// Optional runs p and produces None without consuming anything if p fails.
// It never fails.
func Optional[T any](p Parser[T]) Parser[option.Option[T]] {
	return &optionalParser[T]{p: p, name: "optionalP(" + p.String() + ")"}
}

func (p *optionalParser[T]) String() string { return p.name }

func (p *optionalParser[T]) parse(input string, pos int) (PartialParse[option.Option[T]], *Error) {
	r, err := p.p.parse(input, pos)
	if err != nil {
		return PartialParse[option.Option[T]]{Value: option.None[T](), Next: pos}, nil
	}
	return PartialParse[option.Option[T]]{Value: option.Some(r.Value), Next: r.Next}, nil
}
