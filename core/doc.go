// Package core defines the Node contract every traversable element satisfies,
// the Predicate type queries are expressed with, and small helpers for
// producing lazy successor sequences.
//
// What
//
//   - Node[N]: a comparable value exposing Outgoing() iter.Seq[N].
//     Go equality (==) is the node identity and doubles as the hash used by
//     visited-state tracking, so two values that compare equal are the same
//     graph vertex. Read-only context that must not take part in identity
//     (a stone layout, an item list) is held behind a pointer.
//   - Predicate[N]: a pure func(N) bool. Parallel strategies call it from
//     several goroutines at once.
//   - Builder / Nodified: wraps any comparable value C and a successor
//     function func(C) iter.Seq[C] into a Node without declaring a new type.
//   - Once, Of, Empty, Filter: successor sequence helpers.
//
// Why
//
//	The graph is never materialized. A node only knows how to enumerate its
//	immediate successors on demand, which is what makes implicit and
//	infinite graphs (numeric sequences, puzzle state spaces) traversable.
//
// Determinism
//
//	Outgoing must yield the same sequence for equal nodes. Engines call it at
//	most once per node per traversal.
//
// Usage
//
//	type Fibo struct{ Previous, Current uint64 }
//
//	func (f Fibo) Outgoing() iter.Seq[Fibo] {
//		return core.Once(Fibo{Previous: f.Current, Current: f.Previous + f.Current})
//	}
//
//	// or, without a dedicated type:
//	b := core.NewBuilder(func(i int) iter.Seq[int] { return core.Once(i + 1) })
//	root := b.Build(0)
package core
