package diffy

import "iter"

// Map returns a sequence that yields fn(v) for every v in seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter returns a sequence that yields the values of seq for which keep
// returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Fold combines the values of seq from left to right, starting with init.
func Fold[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}
