// Package either provides a two-variant value: a Left or a Right.
// By convention Right is the success branch.
package either

import "fmt"

// Either holds exactly one of a Left L or a Right R.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds the left variant.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds the right variant.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool  { return !e.isRight }
func (e Either[L, R]) IsRight() bool { return e.isRight }

// LeftValue returns the left value and whether e is a Left.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the right value and whether e is a Right.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold applies f to a Left or g to a Right.
func Fold[L, R, T any](e Either[L, R], f func(L) T, g func(R) T) T {
	if e.isRight {
		return g(e.right)
	}
	return f(e.left)
}

// Map transforms the right value.
func Map[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, T](e.left)
}

// MapLeft transforms the left value.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](f(e.left))
}

// FlatMap chains a computation on the right value.
func FlatMap[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, T](e.left)
}

// Traverse applies f to every item, stopping at the first Left.
func Traverse[L, R, T any](items []T, f func(T) Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(items))
	for _, item := range items {
		r := f(item)
		if !r.isRight {
			return Left[L, []R](r.left)
		}
		out = append(out, r.right)
	}
	return Right[L](out)
}
