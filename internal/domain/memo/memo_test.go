package memo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoize_CallsOncePerKey(t *testing.T) {
	calls := 0
	square := Memoize(func(x int) int {
		calls++
		return x * x
	})

	assert.Equal(t, 9, square.Call(3))
	assert.Equal(t, 9, square.Call(3))
	assert.Equal(t, 16, square.Call(4))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, square.Len())
}

func TestRecursive_Fibonacci(t *testing.T) {
	calls := 0
	fib := Recursive(func(self func(int) uint64, n int) uint64 {
		calls++
		if n < 2 {
			return uint64(n)
		}
		return self(n-1) + self(n-2)
	})

	assert.Equal(t, uint64(12586269025), fib.Call(50))
	assert.Equal(t, 51, calls, "each n computed exactly once")
}

func TestMemoize_ConcurrentCallers(t *testing.T) {
	double := Memoize(func(x int) int { return x * 2 })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, (i%4)*2, double.Call(i%4))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, double.Len())
}
