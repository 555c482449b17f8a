package adjacency

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nodify/core"
)

// Vertex is a handle to a vertex of a Graph, usable as a traversal node.
// Two handles are equal when they name the same ID in the same Graph.
type Vertex struct {
	g  *Graph
	id string
}

// Vertex returns the handle for id. Returns ErrEmptyVertexID or
// ErrVertexNotFound.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return Vertex{g: g, id: id}, nil
}

// ID returns the vertex identifier.
func (v Vertex) ID() string { return v.id }

// Graph returns the graph the vertex belongs to.
func (v Vertex) Graph() *Graph { return v.g }

// String implements fmt.Stringer.
func (v Vertex) String() string { return v.id }

// Outgoing yields the neighbours of v in ascending ID order. The neighbour
// list is snapshotted when iteration starts; edges added afterwards are not
// observed by that iteration.
func (v Vertex) Outgoing() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		if v.g == nil {
			return
		}
		ids, err := v.g.NeighborIDs(v.id)
		if err != nil {
			// zero handle or foreign ID: no successors
			return
		}
		for _, id := range ids {
			if !yield(Vertex{g: v.g, id: id}) {
				return
			}
		}
	}
}

// ByID returns a predicate matching the vertex with the given ID.
func ByID(id string) core.Predicate[Vertex] {
	return func(v Vertex) bool { return v.id == id }
}
