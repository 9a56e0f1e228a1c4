package parsec

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct{ lo, hi int }

func TestSeries3(t *testing.T) {
	p := Map(Series3(Int(), Char(':'), Int()), func(v Tuple3[int, rune, int]) span {
		lo, _, hi := v.Unpack()
		return span{lo, hi}
	})
	parses(t, p, "15:18", span{15, 18})
	parses(t, p, "-5:100", span{-5, 100})

	err := failsWith(t, p, "55")
	assertFailure(t, err, 2, "charP(:)", "End of input reached")
}

func TestSeries3_Tuple(t *testing.T) {
	p := Series3(Int(), Char(':'), Int())
	assert.Equal(t, "seriesP(intP, charP(:), intP)", p.String())
	parses(t, p, "15:18", Tuple3[int, rune, int]{V1: 15, V2: ':', V3: 18})
}

func TestSeries2(t *testing.T) {
	p := Series2(Upper(), Lower())
	parses(t, p, "Ab", Tuple2[rune, rune]{V1: 'A', V2: 'b'})

	err := failsWith(t, p, "AB")
	assertFailure(t, err, 1, "lowerP", "Character 'B' did not satisfy condition")
}

func TestSeries10(t *testing.T) {
	d := Digit()
	p := Series10(d, d, d, d, d, Char('-'), String("xy"), Int(), Char('/'), Long())
	got, err := Parse(p, "12345-xy-7/8")
	require.NoError(t, err)

	v1, v2, v3, v4, v5, v6, v7, v8, v9, v10 := got.Unpack()
	assert.Equal(t, []rune{'1', '2', '3', '4', '5'}, []rune{v1, v2, v3, v4, v5})
	assert.Equal(t, '-', v6)
	assert.Equal(t, "xy", v7)
	assert.Equal(t, -7, v8)
	assert.Equal(t, '/', v9)
	assert.Equal(t, int64(8), v10)

	err2 := failsWith(t, p, "12345-xy-7-8")
	assertFailure(t, err2, 10, "charP(/)", "Non-matching character '-' not '/'")
}

func TestSeries_NilParserPanics(t *testing.T) {
	assert.Panics(t, func() { Series3[int, rune, int](Int(), nil, Int()) })
}

func TestParser_ConcurrentUse(t *testing.T) {
	grammar := SepBy(Series3(Keyword("acc", "jmp", "nop"), Char(' '), Int()), Newline(), true)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := fmt.Sprintf("nop %d\nacc -%d\njmp %d\n", i, i, i*2)
			for range 200 {
				got, err := Parse(grammar, input)
				if err != nil {
					errs[i] = err
					return
				}
				if len(got) != 3 || got[1].V3 != -i || got[2].V1 != "jmp" {
					errs[i] = fmt.Errorf("goroutine %d: unexpected result %v", i, got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
