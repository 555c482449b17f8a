package dfs_test

import (
	"iter"
	"sync"

	"github.com/katalvlaran/nodify/core"
)

// tgraph is a small explicit adjacency map for tests.
type tgraph struct {
	adj map[int][]int
}

func newTGraph(edges ...[2]int) *tgraph {
	g := &tgraph{adj: make(map[int][]int)}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
	}

	return g
}

func (g *tgraph) node(id int) tnode { return tnode{id: id, g: g} }

// tnode is a vertex of a tgraph; identity is (id, graph pointer).
type tnode struct {
	id int
	g  *tgraph
}

func (n tnode) Outgoing() iter.Seq[tnode] {
	return func(yield func(tnode) bool) {
		for _, to := range n.g.adj[n.id] {
			if !yield(tnode{id: to, g: n.g}) {
				return
			}
		}
	}
}

// dag1000 links i -> i+1 and i -> 2i+1 below 1000; 999 is the only sink
// reachable along every branch.
func dag1000() *tgraph {
	g := newTGraph()
	for i := 0; i < 1000; i++ {
		if i+1 < 1000 {
			g.adj[i] = append(g.adj[i], i+1)
		}
		if 2*i+1 < 1000 && 2*i+1 != i+1 {
			g.adj[i] = append(g.adj[i], 2*i+1)
		}
	}

	return g
}

// fibo is the two-term recurrence node (previous, current).
type fibo struct {
	previous, current uint64
}

func (f fibo) Outgoing() iter.Seq[fibo] {
	return core.Once(fibo{previous: f.current, current: f.previous + f.current})
}

// counter is the infinite chain 0 -> 1 -> 2 -> ...
type counter int

func (c counter) Outgoing() iter.Seq[counter] { return core.Once(c + 1) }

// tally wraps a predicate and counts how often each node was tested.
type tally[N comparable] struct {
	mu    sync.Mutex
	calls map[N]int
	pred  core.Predicate[N]
}

func newTally[N comparable](pred core.Predicate[N]) *tally[N] {
	return &tally[N]{calls: make(map[N]int), pred: pred}
}

func (t *tally[N]) test(n N) bool {
	t.mu.Lock()
	t.calls[n]++
	t.mu.Unlock()

	return t.pred(n)
}

// maxCalls returns the highest per-node test count.
func (t *tally[N]) maxCalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := 0
	for _, c := range t.calls {
		m = max(m, c)
	}

	return m
}

func (t *tally[N]) distinct() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.calls)
}
