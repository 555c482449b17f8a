package core

import "iter"

// Once returns a sequence yielding n exactly once.
func Once[N any](n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		yield(n)
	}
}

// Of returns a sequence over ns in order. The slice is not copied.
func Of[N any](ns ...N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range ns {
			if !yield(n) {
				return
			}
		}
	}
}

// Empty returns a sequence with no elements; a node whose Outgoing returns
// Empty() is a sink.
func Empty[N any]() iter.Seq[N] {
	return func(func(N) bool) {}
}

// Filter returns the elements of seq for which keep reports true, lazily.
func Filter[N any](seq iter.Seq[N], keep func(N) bool) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range seq {
			if keep(n) && !yield(n) {
				return
			}
		}
	}
}

// Map converts a sequence of A into a sequence of B, lazily.
func Map[A, B any](seq iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range seq {
			if !yield(fn(a)) {
				return
			}
		}
	}
}
