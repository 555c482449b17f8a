//go:build !nodify_noparallel

package dfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/process"
)

// BenchmarkParallelDFS_Dag1000Exhaustive is the parallel counterpart of
// BenchmarkDFS_Dag1000Exhaustive for several worker counts.
func BenchmarkParallelDFS_Dag1000Exhaustive(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run("workers="+strconv.Itoa(workers), func(b *testing.B) {
			p, _ := dfs.NewParallel(dag1000().node(0), process.WithWorkers(workers))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = p.Contains(core.Never[tnode])
			}
		})
	}
}

