// Package frontier provides the pending-work structures the traversal
// strategies schedule nodes with.
//
//   - Stack: LIFO of discovered nodes for sequential depth-first search.
//     Push order is discovery order; Pop returns the most recently pushed.
//   - Pool: a Stack shared by a fixed set of workers. Pop blocks while the
//     pool is empty but some worker may still produce work, and reports
//     exhaustion once it is empty and every worker is idle. Close ends it
//     early for everyone (found-flag propagation).
//   - Buckets: node lists indexed by non-negative distance level, drained in
//     increasing level order by the level-synchronized search.
//
// None of these structures deduplicate; callers gate insertion through a
// visited.Set.
package frontier
