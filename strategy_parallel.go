//go:build !nodify_noparallel

package nodify

import (
	"fmt"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/delta"
	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/process"
)

const (
	// StrategyParallelDFS is dfs.ParallelDFS.
	StrategyParallelDFS Strategy = "parallel-dfs"

	// StrategyDeltaStepping is delta.DeltaStepping, the only strategy
	// offering FindFirst.
	StrategyDeltaStepping Strategy = "delta-stepping"
)

func init() {
	compiled = append(compiled, StrategyParallelDFS, StrategyDeltaStepping)
}

func newParallel[N core.Node[N]](root N, s Strategy, opts ...process.Option) (process.Searcher[N], error) {
	switch s {
	case StrategyParallelDFS:
		p, err := dfs.NewParallel(root, opts...)
		if err != nil {
			return nil, err
		}

		return p, nil
	case StrategyDeltaStepping:
		return newShortest(root, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}

func newShortest[N core.Node[N]](root N, opts ...process.Option) (process.ShortestSearcher[N], error) {
	d, err := delta.New(root, opts...)
	if err != nil {
		return nil, err
	}

	return d, nil
}
