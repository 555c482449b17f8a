package adjacency

import "errors"

var (
	// ErrCycleDetected indicates that TopologicalSort met a back-edge.
	ErrCycleDetected = errors.New("adjacency: cycle detected")

	// ErrUndirected indicates an operation that requires a directed graph.
	ErrUndirected = errors.New("adjacency: graph is undirected")
)

// visitation states
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *Graph
	state map[string]int
	order []string // post-order
}

// TopologicalSort orders all vertices so that for every edge u→v, u comes
// before v. Roots are visited in ascending ID order, which makes the result
// deterministic.
// Returns ErrUndirected or ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *Graph) ([]string, error) {
	if !g.Directed() {
		return nil, ErrUndirected
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == white {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case gray:
		return ErrCycleDetected
	case black:
		return nil
	}
	t.state[id] = gray

	next, err := t.graph.NeighborIDs(id)
	if err != nil {
		return err
	}
	for _, to := range next {
		if err = t.visit(to); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
