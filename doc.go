// Package nodify is a traversal engine for implicit graphs: graphs known
// only through a successor function on user-defined nodes, which may be
// infinite and are never materialized.
//
// 🚀 What is nodify?
//
//	Implement one method on a comparable type and get every search strategy:
//		• Sequential DFS: deterministic, single goroutine
//		• Parallel DFS: worker pool over a shared work stack
//		• Delta-Stepping: level-synchronized parallel BFS with
//		  minimum-distance answers
//
//	Queries:
//		• Contains(pred)  does any reachable node satisfy pred?
//		• FindAny(pred)   some reachable node satisfying pred
//		• FindFirst(pred) a satisfying node nearest to the root
//		                  (Delta-Stepping only)
//
// ✨ Why nodify?
//
//   - Lazy successors: puzzle states, numeric recurrences and other state
//     spaces are searched without enumerating them up front.
//   - Capability by type: FindFirst exists only on strategies that can
//     answer it, so misuse fails to compile.
//   - Every node is tested at most once per query, cycles included.
//   - Structured logs (logrus), Prometheus metrics and OpenTelemetry spans
//     per query.
//
// Layout:
//
//	core/      - Node contract, Predicate, Builder/Nodified adapter
//	visited/   - sequential and concurrent visited sets
//	frontier/  - stack, shared work pool, distance buckets
//	process/   - query interfaces, options, metrics, tracing
//	dfs/       - sequential and parallel depth-first search
//	delta/     - Delta-Stepping
//	adjacency/ - explicit graphs whose vertices are Nodes
//	builder/   - deterministic graph generators
//
// Quick example:
//
//	type Fibo struct{ Previous, Current uint64 }
//
//	func (f Fibo) Outgoing() iter.Seq[Fibo] {
//		return core.Once(Fibo{f.Current, f.Previous + f.Current})
//	}
//
//	s, _ := nodify.New(Fibo{0, 1}, nodify.StrategyDFS)
//	s.Contains(func(f Fibo) bool { return f.Current == 610 }) // true
//
// Build with -tags nodify_noparallel to compile Sequential DFS only; the
// parallel strategy identifiers are then undefined.
package nodify
