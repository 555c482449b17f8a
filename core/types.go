package core

import "iter"

// Node is the capability a traversable value must provide.
//
// The type parameter is the node type itself, so a user type F satisfies
// Node[F] when F is comparable and has a method Outgoing() iter.Seq[F].
// Every strategy in this module is generic over [N Node[N]].
//
// Equality must match "same logical vertex". Fields that are read-only
// context and should not participate in identity belong behind a pointer
// shared by all nodes of the traversal.
type Node[N any] interface {
	comparable

	// Outgoing lazily enumerates the immediate successors of the node.
	// The sequence must be finite and deterministic for equal nodes.
	Outgoing() iter.Seq[N]
}

// Predicate tests a node. Implementations must be free of side effects that
// would change the answer for other nodes, and safe for concurrent use.
type Predicate[N any] func(N) bool

// Not returns the negation of p.
func Not[N any](p Predicate[N]) Predicate[N] {
	return func(n N) bool { return !p(n) }
}

// Equal returns a Predicate matching nodes equal to target.
func Equal[N comparable](target N) Predicate[N] {
	return func(n N) bool { return n == target }
}

// Never is a Predicate that matches nothing. Useful to force an exhaustive walk.
func Never[N any](N) bool { return false }
