package core_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nodify/core"
)

// chain is a minimal Node: i -> i+1 until 3, then a sink.
type chain int

func (c chain) Outgoing() iter.Seq[chain] {
	if c >= 3 {
		return core.Empty[chain]()
	}

	return core.Once(c + 1)
}

// asNode only instantiates for types satisfying the Node constraint.
func asNode[N core.Node[N]](n N) N { return n }

var _ = asNode(chain(0))

func TestSeqHelpers(t *testing.T) {
	assert.Equal(t, []int{7}, slices.Collect(core.Once(7)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(core.Of(1, 2, 3)))
	assert.Empty(t, slices.Collect(core.Empty[int]()))

	even := core.Filter(core.Of(1, 2, 3, 4, 5, 6), func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(even))

	doubled := core.Map(core.Of(1, 2), func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, slices.Collect(doubled))
}

// Helpers must stop as soon as the consumer does.
func TestSeqHelpers_EarlyStop(t *testing.T) {
	var got []int
	for n := range core.Filter(core.Of(1, 2, 3, 4), func(int) bool { return true }) {
		got = append(got, n)
		if n == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestPredicates(t *testing.T) {
	isTwo := core.Equal(chain(2))
	assert.True(t, isTwo(2))
	assert.False(t, isTwo(3))
	assert.True(t, core.Not(isTwo)(3))
	assert.False(t, core.Never(chain(2)))
}

func TestNodified_OutgoingAndIdentity(t *testing.T) {
	b := core.NewBuilder(func(i int) iter.Seq[int] {
		if i >= 42 {
			return core.Empty[int]()
		}

		return core.Once(i + 1)
	})
	root := b.Build(0)
	assert.Equal(t, 0, root.Value())

	succ := slices.Collect(root.Outgoing())
	require.Len(t, succ, 1)
	assert.Equal(t, b.Build(1), succ[0], "successors keep the same builder")

	other := core.NewBuilder(func(int) iter.Seq[int] { return core.Empty[int]() })
	assert.NotEqual(t, b.Build(5), other.Build(5), "identity includes the builder")

	assert.True(t, core.Lift(func(i int) bool { return i == 1 })(succ[0]))
}

func TestNodified_WithOutgoing(t *testing.T) {
	b := core.NewBuilder(func(i int) iter.Seq[int] { return core.Once(i + 1) })
	b.WithOutgoing(func(i int) iter.Seq[int] { return core.Of(i*10, i*10+1) })
	b.WithOutgoing(nil) // ignored

	got := slices.Collect(core.Map(b.Build(2).Outgoing(), core.Nodified[int].Value))
	assert.Equal(t, []int{20, 21}, got)
}

func TestNewBuilder_Nil(t *testing.T) {
	_, err := core.NewBuilderE[int](nil)
	assert.ErrorIs(t, err, core.ErrNilOutgoing)
	assert.Panics(t, func() { core.NewBuilder[int](nil) })
}
