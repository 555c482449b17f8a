//go:build !nodify_noparallel

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/process"
)

var _ process.Searcher[counter] = (*dfs.ParallelDFS[counter])(nil)

func TestParallelDFS_Fibonacci610(t *testing.T) {
	p, err := dfs.NewParallel(fibo{previous: 0, current: 1}, process.WithWorkers(4))
	require.NoError(t, err)

	got, ok := p.FindAny(func(f fibo) bool { return f.current == 610 })
	require.True(t, ok)
	assert.Equal(t, fibo{previous: 377, current: 610}, got)
}

func TestParallelDFS_TwoCycleTerminates(t *testing.T) {
	g := newTGraph([2]int{0, 1}, [2]int{1, 0})
	p, err := dfs.NewParallel(g.node(0), process.WithWorkers(3))
	require.NoError(t, err)

	tl := newTally(core.Never[tnode])
	assert.False(t, p.Contains(tl.test))
	assert.Equal(t, 2, tl.distinct())
	assert.Equal(t, 1, tl.maxCalls())
}

// Small batches force frequent hand-offs through the shared pool.
func TestParallelDFS_NoDoubleExpansion(t *testing.T) {
	for _, batch := range []int{1, 7, 0} {
		p, err := dfs.NewParallel(dag1000().node(0),
			process.WithWorkers(8),
			process.WithBatchSize(batch),
		)
		require.NoError(t, err)

		tl := newTally(core.Never[tnode])
		assert.False(t, p.Contains(tl.test))
		assert.Equal(t, 1000, tl.distinct(), "batch %d: every reachable node is tested", batch)
		assert.Equal(t, 1, tl.maxCalls(), "batch %d: no node is tested twice", batch)
	}
}

// Sequential and parallel DFS agree on existence for the unique leaf.
func TestParallelDFS_AgreesWithSequential(t *testing.T) {
	g := dag1000()
	isLeaf := func(n tnode) bool { return n.id == 999 }

	seq, err := dfs.New(g.node(0))
	require.NoError(t, err)
	par, err := dfs.NewParallel(g.node(0), process.WithWorkers(8), process.WithBatchSize(16))
	require.NoError(t, err)

	want, ok := seq.FindAny(isLeaf)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		got, ok := par.FindAny(isLeaf)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.False(t, par.Contains(func(n tnode) bool { return n.id < 0 }))
}

func TestParallelDFS_FindAnySatisfiesPredicate(t *testing.T) {
	p, err := dfs.NewParallel(dag1000().node(0), process.WithWorkers(4), process.WithBatchSize(3))
	require.NoError(t, err)

	even := func(n tnode) bool { return n.id > 0 && n.id%2 == 0 }
	for i := 0; i < 20; i++ {
		got, ok := p.FindAny(even)
		require.True(t, ok)
		assert.True(t, even(got))
	}
}

func TestParallelDFS_SingleWorkerInfiniteChain(t *testing.T) {
	p, err := dfs.NewParallel(counter(0), process.WithWorkers(1))
	require.NoError(t, err)

	got, ok := p.FindAny(func(c counter) bool { return c == 5000 })
	require.True(t, ok)
	assert.Equal(t, counter(5000), got)
}

func TestParallelDFS_PredicatePanicPropagates(t *testing.T) {
	p, err := dfs.NewParallel(dag1000().node(0), process.WithWorkers(4), process.WithBatchSize(2))
	require.NoError(t, err)

	assert.PanicsWithValue(t, "predicate failed", func() {
		p.Contains(func(n tnode) bool {
			if n.id == 500 {
				panic("predicate failed")
			}
			return false
		})
	})

	// the process stays usable after a panicking query
	assert.True(t, p.Contains(func(n tnode) bool { return n.id == 42 }))
}

func TestParallelDFS_OptionViolation(t *testing.T) {
	p, err := dfs.NewParallel(counter(0), process.WithBatchSize(-1))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, process.ErrOptionViolation)
}
