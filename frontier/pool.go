package frontier

import (
	"sync"
	"sync/atomic"
)

// Pool is a LIFO work pool shared by concurrent workers.
//
// Protocol: a worker calls Pop; on success it owns the node until it calls
// Release exactly once, handing back any nodes it discovered and did not
// process itself. While at least one worker holds a node the pool cannot be
// considered exhausted, because that worker may still Release new work.
//
// Pop returns ok=false when the pool is exhausted (empty, no active worker)
// or closed. Both states are terminal.
type Pool[N any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []N
	active int  // workers between a successful Pop and its Release
	done   bool // exhausted or closed
	closed bool

	waiting atomic.Int32 // workers blocked in Pop
}

// NewPool returns a pool seeded with the given nodes.
func NewPool[N any](seed ...N) *Pool[N] {
	p := &Pool[N]{items: append(make([]N, 0, max(len(seed), 64)), seed...)}
	p.cond = sync.NewCond(&p.mu)

	return p
}

// Pop blocks until a node is available and returns it, or returns ok=false
// once the pool is exhausted or closed.
func (p *Pool[N]) Pop() (n N, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.items) == 0 && !p.done {
		if p.active == 0 {
			// nobody can produce more work
			p.done = true
			p.cond.Broadcast()

			break
		}
		p.waiting.Add(1)
		p.cond.Wait()
		p.waiting.Add(-1)
	}
	if p.done {
		return n, false
	}

	last := len(p.items) - 1
	n = p.items[last]
	var zero N
	p.items[last] = zero
	p.items = p.items[:last]
	p.active++

	return n, true
}

// Release ends the caller's hold on its popped node and pushes pending back
// in order, so pending[len(pending)-1] is popped first. After Close, pending
// is dropped.
func (p *Pool[N]) Release(pending []N) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active--
	if p.done {
		return
	}
	p.items = append(p.items, pending...)
	if len(p.items) == 0 && p.active == 0 {
		p.done = true
	}
	if len(pending) > 0 || p.done {
		p.cond.Broadcast()
	}
}

// Close terminates the pool: blocked and future Pops return ok=false.
// Safe to call more than once and from any goroutine.
func (p *Pool[N]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done = true
	p.closed = true
	p.items = nil
	p.cond.Broadcast()
}

// Closed reports whether Close was called, as opposed to natural exhaustion.
func (p *Pool[N]) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}

// Waiting returns the number of workers currently blocked in Pop. Workers
// holding a private backlog use it to decide when to share.
func (p *Pool[N]) Waiting() int { return int(p.waiting.Load()) }

// Len returns the number of queued nodes.
func (p *Pool[N]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.items)
}
