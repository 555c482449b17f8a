// Package builder generates deterministic explicit graphs for fixtures,
// benchmarks and the demo CLI. Every constructor writes into an
// adjacency.Graph, whose vertices are traversal nodes.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates the graph, resolves the
//     options once and applies constructors in order.
//     – Constructor: func(*adjacency.Graph, builderConfig) error.
//   - Topologies:
//     – Path(n), Cycle(n), Star(n), BinaryTree(depth), Grid(rows, cols).
//     – RandomSparse(n, p): Erdős–Rényi-like, cycles allowed.
//     – RandomDAG(n, p): forward edges i→j (i<j) only; acyclic by construction.
//   - Options (BuilderOption):
//     – WithIDScheme, WithSymbNumb, WithExcelColumnIDs: vertex naming.
//     – WithSeed, WithRand: randomness for the Random* constructors.
//
// Guarantees:
//
//   - Determinism: same graph options, builder options, seed and constructor
//     order produce identical graphs.
//   - Constructors never panic; they return the sentinels below, wrapped
//     with the constructor name. Option constructors panic on nil inputs.
//
// Errors:
//
//   - ErrTooFewVertices       size parameter below its minimum.
//   - ErrInvalidProbability   p outside [0,1].
//   - ErrNeedRandSource       stochastic constructor without WithSeed/WithRand.
//   - ErrUnsupportedGraphMode constructor incompatible with graph direction.
//   - ErrConstructFailed      nil constructor or graph mutation failure.
package builder
