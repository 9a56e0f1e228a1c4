// Package option provides a value that is either present or absent.
// The parsec engine returns it from Optional; puzzle code uses it where a
// search may come up empty.
package option

import "fmt"

// Option holds zero or one value of T. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value, or def when empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Fold eliminates o: some is applied to a present value, none otherwise.
func Fold[T, S any](o Option[T], some func(T) S, none func() S) S {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// Map applies f to a present value.
func Map[T, S any](o Option[T], f func(T) S) Option[S] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[S]()
}

// FlatMap applies f to a present value and returns its result directly.
func FlatMap[T, S any](o Option[T], f func(T) Option[S]) Option[S] {
	if o.ok {
		return f(o.value)
	}
	return None[S]()
}
