// Package adjacency provides an explicit, thread-safe adjacency-list graph
// whose vertices can be searched by every nodify strategy.
//
// What:
//
//   - Graph: string-keyed vertices and unweighted edges, directed or
//     undirected, optional self-loops, no parallel edges. All methods are
//     safe for concurrent use (one sync.RWMutex).
//   - Vertex: a comparable handle {graph, id} implementing the core.Node
//     contract. Outgoing yields neighbour handles in ascending ID order, so
//     traversal order over an explicit graph is deterministic.
//   - TopologicalSort: recursive depth-first ordering of a directed graph,
//     reporting ErrCycleDetected on a back-edge.
//
// Why:
//
//	The engine is built for implicit graphs, but fixtures, generators and
//	the CLI need concrete ones. Wrapping an explicit graph as Nodes keeps a
//	single traversal code path for both.
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string.
//   - ErrVertexNotFound  requested vertex does not exist.
//   - ErrLoopNotAllowed  self-loop on a graph built without WithLoops.
//   - ErrCycleDetected   TopologicalSort found a cycle.
//   - ErrUndirected      TopologicalSort called on an undirected graph.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, HasEdge: O(1) average.
//   - NeighborIDs, Vertex.Outgoing: O(d log d) for out-degree d.
//   - Vertices: O(V log V).
//   - TopologicalSort: O(V + E).
package adjacency
