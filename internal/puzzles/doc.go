// Package puzzles holds small implicit graphs used by the nodify examples,
// tests and the demo CLI.
//
//   - Fibonacci: the two-term recurrence as an infinite chain.
//   - Counter: an integer lifted into a node with core.Builder.
//   - Frog: the stone-hopping frog; position and speed are the identity,
//     the stone layout is shared read-only context behind a pointer.
//   - Knapsack: the 0/1 knapsack decision tree; every item is either
//     skipped or taken while capacity allows.
package puzzles
