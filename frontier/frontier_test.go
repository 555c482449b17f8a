package frontier_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/frontier"
)

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack(1, 2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := s.Pop()
	assert.False(t, ok, "empty stack must report !ok")
}

func TestStack_ZeroValueAndDrain(t *testing.T) {
	var s frontier.Stack[string]
	s.Push("a")
	s.Push("b")
	assert.Equal(t, []string{"a", "b"}, s.Drain())
	assert.Zero(t, s.Len())
}

func TestBuckets_LevelOrder(t *testing.T) {
	b := frontier.NewBuckets[string]()
	b.Push(2, "c")
	b.Push(0, "root")
	b.PushAll(2, []string{"d", "e"})
	require.Equal(t, 4, b.Len())
	assert.Equal(t, 3, b.LevelLen(2))
	assert.Zero(t, b.LevelLen(1))

	lvl, ok := b.Next(0)
	require.True(t, ok)
	assert.Equal(t, 0, lvl)
	assert.Equal(t, []string{"root"}, b.Take(0))

	lvl, ok = b.Next(1)
	require.True(t, ok)
	assert.Equal(t, 2, lvl, "empty level 1 is skipped")
	assert.Equal(t, []string{"c", "d", "e"}, b.Take(2))

	_, ok = b.Next(0)
	assert.False(t, ok)
	assert.Zero(t, b.Len())
	assert.Nil(t, b.Take(7))
}

func TestBuckets_NegativeLevelPanics(t *testing.T) {
	b := frontier.NewBuckets[int]()
	assert.Panics(t, func() { b.Push(-1, 0) })
}

func TestPool_EmptyDrainsImmediately(t *testing.T) {
	p := frontier.NewPool[int]()
	_, ok := p.Pop()
	assert.False(t, ok)
	assert.False(t, p.Closed())
}

// A worker that releases successors keeps the pool alive until the whole
// chain is consumed, and every node is handed out exactly once.
func TestPool_ActiveAccounting(t *testing.T) {
	const limit = 1000
	p := frontier.NewPool(0)

	var (
		wg      sync.WaitGroup
		handled atomic.Int64
		seen    sync.Map
	)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				n, ok := p.Pop()
				if !ok {
					return
				}
				_, dup := seen.LoadOrStore(n, struct{}{})
				assert.False(t, dup, "node %d handed out twice", n)
				handled.Add(1)

				var next []int
				if c := 2*n + 1; c < limit {
					next = append(next, c)
				}
				if c := 2*n + 2; c < limit {
					next = append(next, c)
				}
				p.Release(next)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(limit), handled.Load())
	assert.Zero(t, p.Len())
	assert.Zero(t, p.Waiting())
}

func TestPool_CloseWakesWaiters(t *testing.T) {
	p := frontier.NewPool(1)
	n, ok := p.Pop()
	require.True(t, ok)
	require.Equal(t, 1, n)

	// The pool is empty but a node is held, so a second Pop blocks.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := p.Pop()
		assert.False(t, ok)
	}()

	p.Close()
	<-done
	p.Release([]int{2, 3}) // dropped after Close
	assert.Zero(t, p.Len())
	assert.True(t, p.Closed())
}
