package parsec

import (
	"fmt"
	"strings"
)

//go:generate go run ../../../scripts/gen-series.go --dir .

// seriesParser runs head and then tail, and joins both values. SeriesN is
// a seriesParser whose tail is Series(N-1).
type seriesParser[H, R, O any] struct {
	head Parser[H]
	tail Parser[R]
	join func(H, R) O
	name string
}

func (p *seriesParser[H, R, O]) String() string { return p.name }

func (p *seriesParser[H, R, O]) parse(input string, pos int) (PartialParse[O], *Error) {
	h, err := p.head.parse(input, pos)
	if err != nil {
		return PartialParse[O]{}, err
	}
	r, err := p.tail.parse(input, h.Next)
	if err != nil {
		return PartialParse[O]{}, err
	}
	return PartialParse[O]{Value: p.join(h.Value, r.Value), Next: r.Next}, nil
}

func seriesName(ps ...fmt.Stringer) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		if p == nil {
			panic(fmt.Sprintf("parsec: Series%d with nil parser at position %d", len(ps), i+1))
		}
		names[i] = p.String()
	}
	return "seriesP(" + strings.Join(names, ", ") + ")"
}
