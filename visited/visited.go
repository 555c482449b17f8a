// Package visited tracks which nodes a traversal has already claimed.
//
// A node is expanded at most once per traversal regardless of how many
// in-edges lead to it; Insert is the gate. Sequential strategies use a plain
// map, parallel strategies use Concurrent, whose Insert is the single
// synchronization point deciding which worker expands a node.
package visited

import (
	"sync"
	"sync/atomic"
)

// Set is the visited-state tracker.
type Set[N comparable] interface {
	// Insert adds n and reports whether it was absent before the call.
	// Exactly one caller observes true for a given node.
	Insert(n N) bool

	// Contains reports whether n has been inserted.
	Contains(n N) bool

	// Len returns the number of inserted nodes.
	Len() int
}

// Sequential is a Set for single-goroutine traversals. Not safe for
// concurrent use.
type Sequential[N comparable] struct {
	seen map[N]struct{}
}

// NewSequential returns an empty Sequential set with room for sizeHint nodes.
func NewSequential[N comparable](sizeHint int) *Sequential[N] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Sequential[N]{seen: make(map[N]struct{}, sizeHint)}
}

// Insert adds n; true if n was new.
func (s *Sequential[N]) Insert(n N) bool {
	if _, ok := s.seen[n]; ok {
		return false
	}
	s.seen[n] = struct{}{}

	return true
}

// Contains reports whether n was inserted.
func (s *Sequential[N]) Contains(n N) bool {
	_, ok := s.seen[n]

	return ok
}

// Len returns the number of nodes inserted so far.
func (s *Sequential[N]) Len() int { return len(s.seen) }

// Concurrent is a Set safe for use by many goroutines. Insert is
// linearizable: among racing inserts of the same node exactly one wins.
//
// Backed by sync.Map, whose LoadOrStore fits the write-once, read-many
// access pattern of a visited set and keeps disjoint keys from contending
// on a single lock.
type Concurrent[N comparable] struct {
	seen  sync.Map // N -> struct{}
	count atomic.Int64
}

// NewConcurrent returns an empty Concurrent set.
func NewConcurrent[N comparable]() *Concurrent[N] {
	return &Concurrent[N]{}
}

// Insert atomically adds n if absent; true for the single winning caller.
func (s *Concurrent[N]) Insert(n N) bool {
	if _, loaded := s.seen.LoadOrStore(n, struct{}{}); loaded {
		return false
	}
	s.count.Add(1)

	return true
}

// Contains reports whether n was inserted. A false answer may be stale by
// the time the caller acts on it; use Insert to claim a node.
func (s *Concurrent[N]) Contains(n N) bool {
	_, ok := s.seen.Load(n)

	return ok
}

// Len returns the number of inserted nodes.
func (s *Concurrent[N]) Len() int { return int(s.count.Load()) }

var (
	_ Set[int] = (*Sequential[int])(nil)
	_ Set[int] = (*Concurrent[int])(nil)
)
