package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/nodify/adjacency"
	"github.com/katalvlaran/nodify/dfs"
)

// ExampleDFS searches a diamond-shaped graph given as an adjacency list.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//
// D is reachable from A; A is not reachable from D.
func ExampleDFS() {
	g := adjacency.NewGraph(adjacency.WithDirected(true))
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
	} {
		_ = g.AddEdge(edge.U, edge.V)
	}

	a, _ := g.Vertex("A")
	d, _ := g.Vertex("D")

	fromA, err := dfs.New(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fromD, _ := dfs.New(d)

	fmt.Println(fromA.Contains(adjacency.ByID("D")))
	fmt.Println(fromD.Contains(adjacency.ByID("A")))
	// Output:
	// true
	// false
}
