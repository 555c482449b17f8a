//go:build nodify_noparallel

package nodify

import (
	"fmt"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/process"
)

func newParallel[N core.Node[N]](_ N, s Strategy, _ ...process.Option) (process.Searcher[N], error) {
	return nil, fmt.Errorf("%w: %q not compiled into this build", ErrStrategyUnavailable, string(s))
}

func newShortest[N core.Node[N]](N, ...process.Option) (process.ShortestSearcher[N], error) {
	return nil, fmt.Errorf("%w: minimum-distance search needs parallel strategies", ErrStrategyUnavailable)
}
