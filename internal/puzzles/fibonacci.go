package puzzles

import (
	"iter"

	"github.com/katalvlaran/nodify/core"
)

// Fibonacci is the state (previous, current) of the sequence.
type Fibonacci struct {
	Previous uint64
	Current  uint64
}

// FirstFibonacci returns the state holding the first two terms, 0 and 1.
func FirstFibonacci() Fibonacci { return Fibonacci{Previous: 0, Current: 1} }

// Outgoing yields the single next state. The chain never ends; the terms
// wrap around after F(93).
func (f Fibonacci) Outgoing() iter.Seq[Fibonacci] {
	return core.Once(Fibonacci{Previous: f.Current, Current: f.Previous + f.Current})
}

// FibonacciTerm matches states whose current term equals v.
func FibonacciTerm(v uint64) core.Predicate[Fibonacci] {
	return func(f Fibonacci) bool { return f.Current == v }
}
