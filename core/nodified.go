package core

import (
	"errors"
	"iter"
)

// ErrNilOutgoing is returned by NewBuilderE when the successor function is nil.
var ErrNilOutgoing = errors.New("core: outgoing function is nil")

// Builder turns plain comparable values into Nodes by attaching a successor
// function to them. All Nodified values built from the same Builder share it
// through a pointer, which keeps them comparable.
type Builder[C comparable] struct {
	outgoing func(C) iter.Seq[C]
}

// NewBuilder returns a Builder using fn to enumerate successors.
// It panics if fn is nil; use NewBuilderE to get an error instead.
func NewBuilder[C comparable](fn func(C) iter.Seq[C]) *Builder[C] {
	b, err := NewBuilderE(fn)
	if err != nil {
		panic(err.Error())
	}

	return b
}

// NewBuilderE is NewBuilder returning ErrNilOutgoing for a nil fn.
func NewBuilderE[C comparable](fn func(C) iter.Seq[C]) (*Builder[C], error) {
	if fn == nil {
		return nil, ErrNilOutgoing
	}

	return &Builder[C]{outgoing: fn}, nil
}

// Build wraps value into a Nodified node bound to b.
func (b *Builder[C]) Build(value C) Nodified[C] {
	return Nodified[C]{value: value, builder: b}
}

// WithOutgoing replaces the successor function. Nodes already built observe
// the new function on their next Outgoing call, so do not call it while a
// traversal over nodes of b is running. A nil fn is ignored.
func (b *Builder[C]) WithOutgoing(fn func(C) iter.Seq[C]) *Builder[C] {
	if fn != nil {
		b.outgoing = fn
	}

	return b
}

// Nodified is a value of type C viewed as a Node. Two Nodified values are
// equal when their values are equal and they come from the same Builder.
type Nodified[C comparable] struct {
	value   C
	builder *Builder[C]
}

// Value returns the wrapped value.
func (n Nodified[C]) Value() C { return n.value }

// Outgoing applies the builder's successor function to the wrapped value and
// rewraps every successor.
func (n Nodified[C]) Outgoing() iter.Seq[Nodified[C]] {
	return func(yield func(Nodified[C]) bool) {
		for next := range n.builder.outgoing(n.value) {
			if !yield(Nodified[C]{value: next, builder: n.builder}) {
				return
			}
		}
	}
}

// Lift adapts a predicate over plain values into a Predicate over Nodified
// nodes, so queries can be written against the underlying type.
func Lift[C comparable](pred func(C) bool) Predicate[Nodified[C]] {
	return func(n Nodified[C]) bool { return pred(n.value) }
}
