//go:build !nodify_noparallel

package delta_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/nodify/delta"
	"github.com/katalvlaran/nodify/process"
)

// BenchmarkFindFirst_Heap16 searches the implicit binary heap for a node on
// level 16, so each iteration drains about 2^16 nodes level by level.
func BenchmarkFindFirst_Heap16(b *testing.B) {
	const target = heap(1<<16 - 1)
	for _, workers := range []int{1, 4, 8} {
		b.Run("workers="+strconv.Itoa(workers), func(b *testing.B) {
			d, _ := delta.New(heap(0), process.WithWorkers(workers))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := d.FindFirst(func(h heap) bool { return h == target }); !ok {
					b.Fatal("target not found")
				}
			}
		})
	}
}
