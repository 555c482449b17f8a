package visited_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/visited"
)

func TestSet_InsertOnce(t *testing.T) {
	for name, s := range map[string]visited.Set[string]{
		"sequential": visited.NewSequential[string](4),
		"concurrent": visited.NewConcurrent[string](),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, s.Contains("a"))
			assert.True(t, s.Insert("a"))
			assert.False(t, s.Insert("a"), "second insert must lose")
			assert.True(t, s.Contains("a"))
			assert.True(t, s.Insert("b"))
			assert.Equal(t, 2, s.Len())
		})
	}
}

func TestSequential_NegativeHint(t *testing.T) {
	s := visited.NewSequential[int](-5)
	require.NotNil(t, s)
	assert.True(t, s.Insert(1))
}

// Racing inserts of the same keys: exactly one winner per key.
func TestConcurrent_SingleWinner(t *testing.T) {
	const (
		workers = 8
		keys    = 500
	)
	s := visited.NewConcurrent[int]()

	var (
		wg   sync.WaitGroup
		wins atomic.Int64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < keys; k++ {
				if s.Insert(k) {
					wins.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(keys), wins.Load())
	assert.Equal(t, keys, s.Len())
}
