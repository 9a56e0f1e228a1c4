package parsec

import "strconv"

type manyParser[T any] struct {
	p    Parser[T]
	name string
}

// Many applies p until it fails, the input is exhausted, or p succeeds
// without consuming anything. The failing attempt is not consumed.
// Many never fails; with no matches it produces an empty slice.
func Many[T any](p Parser[T]) Parser[[]T] {
	return &manyParser[T]{p: p, name: "manyP(" + p.String() + ")"}
}

func (p *manyParser[T]) String() string { return p.name }

func (p *manyParser[T]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out, next := repeat(p.p, input, pos)
	return PartialParse[[]T]{Value: out, Next: next}, nil
}

// repeat is the Many loop.
func repeat[T any](p Parser[T], input string, pos int) ([]T, int) {
	out := []T{}
	cur := pos
	for cur < len(input) {
		res, err := p.parse(input, cur)
		if err != nil || res.Next == cur {
			break
		}
		out = append(out, res.Value)
		cur = res.Next
	}
	return out, cur
}

type many1Parser[T any] struct {
	p    Parser[T]
	name string
}

// Many1 is Many requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return &many1Parser[T]{p: p, name: "many1P(" + p.String() + ")"}
}

func (p *many1Parser[T]) String() string { return p.name }

func (p *many1Parser[T]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out, next := repeat(p.p, input, pos)
	if len(out) == 0 {
		return PartialParse[[]T]{}, newError(input, pos, p.name, "Expected to match at least one")
	}
	return PartialParse[[]T]{Value: out, Next: next}, nil
}

type repeatedParser[T any] struct {
	p    Parser[T]
	n    int
	name string
}

// Repeated applies p exactly n times. The first failure is returned as is.
// It panics if n is negative.
func Repeated[T any](p Parser[T], n int) Parser[[]T] {
	if n < 0 {
		panic("parsec: Repeated with negative count " + strconv.Itoa(n))
	}
	return &repeatedParser[T]{p: p, n: n, name: "(" + p.String() + " repeated " + strconv.Itoa(n) + ")"}
}

func (p *repeatedParser[T]) String() string { return p.name }

func (p *repeatedParser[T]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out := make([]T, 0, p.n)
	cur := pos
	for len(out) < p.n {
		res, err := p.p.parse(input, cur)
		if err != nil {
			return PartialParse[[]T]{}, err
		}
		out = append(out, res.Value)
		cur = res.Next
	}
	return PartialParse[[]T]{Value: out, Next: cur}, nil
}

type manyTillParser[T, E any] struct {
	p    Parser[T]
	end  Parser[E]
	name string
}

// ManyTill applies p until end matches. end is probed before every
// application of p and is left unconsumed.
func ManyTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return &manyTillParser[T, E]{p: p, end: end, name: "(" + p.String() + " manyTill " + end.String() + ")"}
}

func (p *manyTillParser[T, E]) String() string { return p.name }

func (p *manyTillParser[T, E]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out := []T{}
	cur := pos
	for cur < len(input) {
		if _, err := p.end.parse(input, cur); err == nil {
			return PartialParse[[]T]{Value: out, Next: cur}, nil
		}
		res, err := p.p.parse(input, cur)
		if err != nil || res.Next == cur {
			return PartialParse[[]T]{}, newError(input, cur, p.name, "Unable to parse, but end not yet reached")
		}
		out = append(out, res.Value)
		cur = res.Next
	}
	return PartialParse[[]T]{}, newError(input, cur, p.name, "Did not find end before reaching end of input")
}

type sepByParser[T, S any] struct {
	p             Parser[T]
	sep           Parser[S]
	allowTrailing bool
	name          string
}

// SepBy matches zero or more p separated by sep. With allowTrailing a
// single separator after the last element is consumed too. SepBy never
// fails.
func SepBy[T, S any](p Parser[T], sep Parser[S], allowTrailing bool) Parser[[]T] {
	return &sepByParser[T, S]{
		p:             p,
		sep:           sep,
		allowTrailing: allowTrailing,
		name:          "(" + p.String() + " sepBy " + sep.String() + ")",
	}
}

func (p *sepByParser[T, S]) String() string { return p.name }

func (p *sepByParser[T, S]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out, next := p.run(input, pos)
	return PartialParse[[]T]{Value: out, Next: next}, nil
}

func (p *sepByParser[T, S]) run(input string, pos int) ([]T, int) {
	first, err := p.p.parse(input, pos)
	if err != nil {
		return []T{}, pos
	}
	out := []T{first.Value}
	cur := first.Next
	for cur < len(input) {
		s, err := p.sep.parse(input, cur)
		if err != nil {
			break
		}
		res, err := p.p.parse(input, s.Next)
		if err != nil || res.Next == cur {
			break
		}
		out = append(out, res.Value)
		cur = res.Next
	}
	if p.allowTrailing {
		if s, err := p.sep.parse(input, cur); err == nil {
			cur = s.Next
		}
	}
	return out, cur
}

type sepBy1Parser[T, S any] struct {
	sepBy *sepByParser[T, S]
	name  string
}

// SepBy1 is SepBy requiring at least one element.
func SepBy1[T, S any](p Parser[T], sep Parser[S], allowTrailing bool) Parser[[]T] {
	return &sepBy1Parser[T, S]{
		sepBy: &sepByParser[T, S]{p: p, sep: sep, allowTrailing: allowTrailing},
		name:  "(" + p.String() + " sepBy1 " + sep.String() + ")",
	}
}

func (p *sepBy1Parser[T, S]) String() string { return p.name }

func (p *sepBy1Parser[T, S]) parse(input string, pos int) (PartialParse[[]T], *Error) {
	out, next := p.sepBy.run(input, pos)
	if len(out) == 0 {
		return PartialParse[[]T]{}, newError(input, pos, p.name, "Expected to match at least one")
	}
	return PartialParse[[]T]{Value: out, Next: next}, nil
}
