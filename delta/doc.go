// Package delta implements Delta-Stepping with unit edge weights: a
// level-synchronized parallel breadth-first search that buckets nodes by
// their edge distance from the root.
//
// What:
//
//   - Bucket i holds the nodes first discovered at distance i. Discovery
//     claims a node in a concurrent visited set, so each node enters exactly
//     one bucket, the one of its minimum distance.
//   - Buckets are drained in increasing order with a strict barrier: every
//     member of bucket i is tested and all its unclaimed successors are
//     placed in bucket i+1 before bucket i+1 starts.
//   - A bucket no wider than ParallelThreshold is drained on the caller
//     goroutine. A wider one is cut into Workers contiguous chunks drained
//     concurrently.
//
// DeltaStepping implements process.ShortestSearcher:
//
//   - FindFirst finishes testing the level where the first match appears,
//     without expanding it, and returns the match closest to the start of
//     that level. No match exists at a smaller distance.
//   - Contains and FindAny stop at the first match.
//
// Complexity:
//
//   - Time:   O(V + E) node tests and successor enumerations.
//   - Memory: O(V) visited set plus the two widest adjacent levels.
//
// The package is empty when built with the nodify_noparallel tag.
package delta
