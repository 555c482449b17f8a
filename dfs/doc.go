// Package dfs implements depth-first search over implicit graphs: any
// core.Node, including infinite state spaces, traversed from a root.
//
// What:
//
//   - DFS: sequential, single goroutine. Pops the most recently discovered
//     node, skips it if already visited, marks it, tests the predicate, then
//     pushes its unvisited successors in Outgoing order. The successor
//     yielded last is therefore explored first.
//   - ParallelDFS: a fixed set of workers sharing one LIFO work pool and one
//     concurrent visited set. Each worker drains a private stack for up to
//     BatchSize nodes and hands its backlog to the pool as soon as another
//     worker is idle. The first match closes the pool for everyone.
//     Unavailable when built with the nodify_noparallel tag.
//
// Both implement process.Searcher (Contains, FindAny). Neither offers
// FindFirst: depth-first order gives no distance guarantee, so the method
// does not exist rather than returning a wrong answer.
//
// Guarantees:
//
//   - every reachable node is tested at most once per query;
//   - Contains/FindAny stop at the first match (parallel: shortly after);
//   - on a finite graph with no match, every reachable node is tested once;
//   - on an infinite graph with no match, the query does not terminate.
//
// Determinism:
//
//	DFS is fully deterministic given deterministic Outgoing. ParallelDFS
//	FindAny may return different matches between runs; Contains does not.
//
// Complexity:
//
//   - Time:   O(V + E) node tests and successor enumerations.
//   - Memory: O(V) visited set plus the pending stack.
//
// Errors:
//
//   - process.ErrOptionViolation  from New/NewParallel on invalid options.
//   - A panic in the predicate or Outgoing reaches the query caller.
package dfs
