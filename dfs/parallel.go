//go:build !nodify_noparallel

package dfs

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/frontier"
	"github.com/katalvlaran/nodify/process"
	"github.com/katalvlaran/nodify/visited"
)

// ParallelName labels parallel DFS in logs, spans and metrics.
const ParallelName = "parallel-dfs"

// ParallelDFS is a depth-first traversal run by Options.Workers goroutines
// sharing one work pool. Safe for concurrent queries; each query starts its
// own workers and waits for all of them before returning.
type ParallelDFS[N core.Node[N]] struct {
	root N
	opts process.Options
}

// NewParallel returns a parallel DFS rooted at root.
// Returns process.ErrOptionViolation for invalid options.
func NewParallel[N core.Node[N]](root N, opts ...process.Option) (*ParallelDFS[N], error) {
	o, err := process.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &ParallelDFS[N]{root: root, opts: o}, nil
}

// Root returns the start node.
func (p *ParallelDFS[N]) Root() N { return p.root }

// Contains reports whether a node reachable from the root satisfies pred.
func (p *ParallelDFS[N]) Contains(pred core.Predicate[N]) bool {
	_, found := p.search(process.OpContains, pred)

	return found
}

// FindAny returns some node satisfying pred. Which one may differ between
// runs when several nodes match.
func (p *ParallelDFS[N]) FindAny(pred core.Predicate[N]) (N, bool) {
	return p.search(process.OpFindAny, pred)
}

// race is the state shared by the workers of one query.
type race[N core.Node[N]] struct {
	pool  *frontier.Pool[N]
	seen  *visited.Concurrent[N]
	pred  core.Predicate[N]
	batch int
	q     *process.Query
	log   logrus.FieldLogger
	trap  process.Trap

	stop  atomic.Bool // set on first match or first panic
	once  sync.Once
	match N
	found bool
}

func (p *ParallelDFS[N]) search(op process.Operation, pred core.Predicate[N]) (N, bool) {
	q := process.Begin(&p.opts, ParallelName, op)
	defer q.End()

	r := &race[N]{
		pool:  frontier.NewPool(p.root),
		seen:  visited.NewConcurrent[N](),
		pred:  pred,
		batch: p.opts.BatchSize,
		q:     q,
		log:   q.Logger(),
	}

	var g errgroup.Group
	for id := range max(p.opts.Workers, 1) {
		g.Go(func() error {
			r.work(id)
			return nil
		})
	}
	_ = g.Wait()

	// every worker is gone; a captured panic belongs to the caller now
	r.trap.Rethrow()

	q.Found(r.found)

	return r.match, r.found
}

// work pops from the shared pool until it is exhausted or closed.
func (r *race[N]) work(id int) {
	defer r.trap.Guard(r.log, id, r.halt)

	local := frontier.NewStack[N]()
	for {
		n, ok := r.pool.Pop()
		if !ok {
			return
		}
		local.Push(n)
		r.drain(local)
		r.pool.Release(local.Drain())
	}
}

// drain expands nodes from the private stack until the batch is spent, the
// stack is empty, another worker goes idle, or the search stops.
func (r *race[N]) drain(local *frontier.Stack[N]) {
	var tested int64
	defer func() { r.q.Tested(tested) }()

	for steps := 0; steps < r.batch; {
		if r.stop.Load() {
			return
		}
		n, ok := local.Pop()
		if !ok {
			return
		}
		if !r.seen.Insert(n) {
			continue
		}
		steps++

		tested++
		if r.pred(n) {
			r.win(n)
			return
		}
		for next := range n.Outgoing() {
			if !r.seen.Contains(next) {
				local.Push(next)
			}
		}

		// share the backlog with idle workers
		if local.Len() > 1 && r.pool.Waiting() > 0 {
			return
		}
	}
}

// win records the first match and stops every worker.
func (r *race[N]) win(n N) {
	r.once.Do(func() {
		r.match = n
		r.found = true
		r.halt()
	})
}

func (r *race[N]) halt() {
	r.stop.Store(true)
	r.pool.Close()
}
