// Package memo caches results of pure functions keyed by their argument.
package memo

import "sync"

// Func is a memoised single-argument function. It is safe for concurrent
// use; f runs without the lock held, so f may call back into the same Func.
type Func[K comparable, V any] struct {
	mu    sync.Mutex
	f     func(K) V
	table map[K]V
}

// Memoize wraps f.
func Memoize[K comparable, V any](f func(K) V) *Func[K, V] {
	return &Func[K, V]{f: f, table: make(map[K]V)}
}

// Recursive memoises a function that needs to call itself. The self
// argument passed to f is the memoised function.
func Recursive[K comparable, V any](f func(self func(K) V, k K) V) *Func[K, V] {
	m := &Func[K, V]{table: make(map[K]V)}
	m.f = func(k K) V { return f(m.Call, k) }
	return m
}

// Call returns the cached result for k, computing it on first use.
func (m *Func[K, V]) Call(k K) V {
	m.mu.Lock()
	if v, ok := m.table[k]; ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := m.f(k)

	m.mu.Lock()
	m.table[k] = v
	m.mu.Unlock()
	return v
}

// Len returns the number of cached entries.
func (m *Func[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.table)
}
