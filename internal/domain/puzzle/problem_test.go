package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/adco/internal/domain/parsec"
)

func TestParsePart(t *testing.T) {
	for in, want := range map[string]Part{"a": PartA, "B": PartB} {
		got, err := ParsePart(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePart("c")
	assert.Error(t, err)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "1\n2", NormalizeInput("1\r\n2\r\n"))
	assert.Equal(t, "1\n2\n", NormalizeInput("1\n2\n\n"))
	assert.Equal(t, "", NormalizeInput(""))
}

func TestParseErrorWrapsParsecError(t *testing.T) {
	_, err := Day1().PartA("1721\n97x\n")
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Error parsing input", perr.Msg)

	var serr *parsec.Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 7, serr.Loc)
	assert.Equal(t, "2:3", serr.Position().String())
	assert.Contains(t, err.Error(), "Error parsing input; caused by: Error parsing")
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Day8().Check("nop +0\nacc +1\n"))
	assert.Error(t, Day8().Check("nop +0\nadd +1\n"))
}

func TestSolve(t *testing.T) {
	got, err := Solve(Day1(), PartA, "1721\n979\n366\n299\n675\n1456")
	require.NoError(t, err)
	assert.Equal(t, "514579", got)

	_, err = Solve(Day1(), Part("z"), "")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, r.Days())

	p, err := r.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "Day 7: Handy Haversacks", p.Title())
	assert.Equal(t, 7, p.Day())

	_, err = r.Get(25)
	assert.EqualError(t, err, "day 25 is not implemented")
}

func TestDayFromFileName(t *testing.T) {
	tests := []struct {
		path string
		day  int
		ok   bool
	}{
		{"day07.txt", 7, true},
		{"inputs/day7-input.txt", 7, true},
		{"/tmp/Day_12.txt", 12, true},
		{"day-3", 3, true},
		{"day0.txt", 0, false},
		{"input.txt", 0, false},
		{"day.txt", 0, false},
		{"myday07.txt", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			day, ok := DayFromFileName(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.day, day)
		})
	}
}
