package dfs

import (
	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/frontier"
	"github.com/katalvlaran/nodify/process"
	"github.com/katalvlaran/nodify/visited"
)

// Name labels sequential DFS in logs, spans and metrics.
const Name = "dfs"

// DFS is a sequential depth-first traversal from a fixed root.
// A DFS value holds no per-query state and is safe for concurrent queries.
type DFS[N core.Node[N]] struct {
	root N
	opts process.Options
}

// New returns a sequential DFS rooted at root.
// Returns process.ErrOptionViolation for invalid options.
func New[N core.Node[N]](root N, opts ...process.Option) (*DFS[N], error) {
	o, err := process.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &DFS[N]{root: root, opts: o}, nil
}

// Root returns the start node.
func (d *DFS[N]) Root() N { return d.root }

// Contains reports whether a node reachable from the root satisfies pred.
func (d *DFS[N]) Contains(pred core.Predicate[N]) bool {
	_, found := d.search(process.OpContains, pred)

	return found
}

// FindAny returns the first node satisfying pred in depth-first order.
func (d *DFS[N]) FindAny(pred core.Predicate[N]) (N, bool) {
	return d.search(process.OpFindAny, pred)
}

// dfsWalker encapsulates the state of one query.
type dfsWalker[N core.Node[N]] struct {
	stack  *frontier.Stack[N]
	seen   *visited.Sequential[N]
	pred   core.Predicate[N]
	tested int64
}

func (d *DFS[N]) search(op process.Operation, pred core.Predicate[N]) (match N, found bool) {
	q := process.Begin(&d.opts, Name, op)
	defer q.End()

	w := &dfsWalker[N]{
		stack: frontier.NewStack(d.root),
		seen:  visited.NewSequential[N](64),
		pred:  pred,
	}
	defer func() { q.Tested(w.tested) }()

	match, found = w.loop()
	q.Found(found)

	return match, found
}

// loop pops until a match or an empty stack.
func (w *dfsWalker[N]) loop() (N, bool) {
	for {
		n, ok := w.stack.Pop()
		if !ok {
			var zero N
			return zero, false
		}
		if !w.seen.Insert(n) {
			// reached again through another in-edge before being popped
			continue
		}

		w.tested++
		if w.pred(n) {
			return n, true
		}
		w.pushSuccessors(n)
	}
}

// pushSuccessors pushes unvisited successors of n in Outgoing order.
func (w *dfsWalker[N]) pushSuccessors(n N) {
	for next := range n.Outgoing() {
		if !w.seen.Contains(next) {
			w.stack.Push(next)
		}
	}
}
