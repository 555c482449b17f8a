package adjacency

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("adjacency: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge directedness (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory adjacency-list graph.
//
// Undirected edges are stored in both directions and counted once.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	// adj[from][to] is present for every edge from→to (and to→from when
	// undirected). Every vertex has an entry, possibly empty.
	adj   map[string]map[string]struct{}
	edges int
}

// NewGraph creates an empty Graph. By default it is undirected with no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string]map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
