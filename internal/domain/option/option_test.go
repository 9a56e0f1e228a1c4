package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_SomeAndNone(t *testing.T) {
	s := Some(3)
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, s.IsSome())

	n := None[int]()
	_, ok = n.Get()
	assert.False(t, ok)
	assert.True(t, n.IsNone())
	assert.Equal(t, Option[int]{}, n, "zero value is None")
}

func TestOption_OrElse(t *testing.T) {
	assert.Equal(t, 1, Some(1).OrElse(9))
	assert.Equal(t, 9, None[int]().OrElse(9))
}

func TestOption_MapFlatMapFold(t *testing.T) {
	double := func(x int) int { return x * 2 }
	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.Equal(t, None[int](), Map(None[int](), double))

	parse := func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Some(n)
	}
	assert.Equal(t, Some(12), FlatMap(Some("12"), parse))
	assert.Equal(t, None[int](), FlatMap(Some("x"), parse))

	describe := func(o Option[int]) string {
		return Fold(o, strconv.Itoa, func() string { return "empty" })
	}
	assert.Equal(t, "7", describe(Some(7)))
	assert.Equal(t, "empty", describe(None[int]()))
}

func TestOption_FromPtrAndString(t *testing.T) {
	x := 5
	assert.Equal(t, Some(5), FromPtr(&x))
	assert.Equal(t, None[int](), FromPtr[int](nil))
	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}
