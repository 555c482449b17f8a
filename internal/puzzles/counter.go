package puzzles

import (
	"iter"

	"github.com/katalvlaran/nodify/core"
)

// counter is shared by every Counter node so that they compare equal.
var counter = core.NewBuilder(func(i int) iter.Seq[int] { return core.Once(i + 1) })

// Counter returns the node for start in the progression start, start+1, ...
func Counter(start int) core.Nodified[int] { return counter.Build(start) }
