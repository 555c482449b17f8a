package nodify_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify"
	"github.com/katalvlaran/nodify/internal/puzzles"
	"github.com/katalvlaran/nodify/process"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"dfs", "DFS", "sequential", " d-f_s "} {
		s, err := nodify.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, nodify.StrategyDFS, s)
	}

	_, err := nodify.ParseStrategy("bfs")
	assert.ErrorIs(t, err, nodify.ErrUnknownStrategy)
	_, err = nodify.ParseStrategy("")
	assert.ErrorIs(t, err, nodify.ErrUnknownStrategy)
}

func TestStrategies_AlwaysHaveDFS(t *testing.T) {
	all := nodify.Strategies()
	require.NotEmpty(t, all)
	assert.Equal(t, nodify.StrategyDFS, all[0])
	assert.True(t, nodify.Available(nodify.StrategyDFS))
	assert.False(t, nodify.SupportsFindFirst(nodify.StrategyDFS))
	assert.Equal(t, "dfs", nodify.StrategyDFS.String())

	all[0] = "mutated"
	assert.Equal(t, nodify.StrategyDFS, nodify.Strategies()[0], "callers get a copy")
}

func TestNew_DFS(t *testing.T) {
	p, err := nodify.New(puzzles.FirstFibonacci(), nodify.StrategyDFS)
	require.NoError(t, err)
	assert.Equal(t, puzzles.FirstFibonacci(), p.Root())
	assert.True(t, p.Contains(puzzles.FibonacciTerm(610)))
}

func TestNew_Errors(t *testing.T) {
	_, err := nodify.New(puzzles.FirstFibonacci(), nodify.Strategy("bogus"))
	assert.ErrorIs(t, err, nodify.ErrUnknownStrategy)

	_, err = nodify.New(puzzles.FirstFibonacci(), nodify.StrategyDFS, process.WithWorkers(-1))
	assert.ErrorIs(t, err, process.ErrOptionViolation)
}

// Example runs the sequential DFS over the Fibonacci recurrence.
func Example() {
	p, err := nodify.New(puzzles.FirstFibonacci(), nodify.StrategyDFS)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, ok := p.FindAny(puzzles.FibonacciTerm(610))
	fmt.Println(ok, f.Previous, f.Current)
	// Output: true 377 610
}
