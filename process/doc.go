// Package process defines the query layer shared by every traversal
// strategy, plus the knobs and instrumentation they have in common.
//
// What
//
//   - Process[N]: a traversal anchored at a root node.
//   - Container / AnyFinder / FirstFinder: one interface per query
//     capability. Searcher bundles Contains and FindAny, which every
//     strategy supports; ShortestSearcher adds FindFirst, which only the
//     level-synchronized strategy provides. Asking a depth-first strategy for
//     a shortest match is therefore a compile error, not a runtime one.
//   - Options: worker count, sequential fallback threshold, per-worker batch
//     size, logger, metrics and tracer. Invalid values are recorded while
//     options are applied and surface as ErrOptionViolation from Apply.
//   - Metrics: Prometheus counters and histograms per strategy and query.
//   - Query: per-call bookkeeping that opens the span, logs, counts tested
//     nodes and records the outcome.
//   - Panics: first-panic capture so a predicate panicking on a worker
//     goroutine is re-raised on the caller goroutine.
//
// Queries never return errors. The only failure channel is a panic raised by
// user code (a predicate or Outgoing), which always reaches the caller.
package process
