package process

import "github.com/katalvlaran/nodify/core"

// Process is a traversal anchored at a root node. Implementations keep no
// per-query state, so one value may serve concurrent queries.
type Process[N core.Node[N]] interface {
	// Root returns the node every query starts from.
	Root() N
}

// Container answers existence queries.
type Container[N core.Node[N]] interface {
	Process[N]

	// Contains reports whether some node reachable from the root, root
	// included, satisfies pred. Stops at the first match.
	Contains(pred core.Predicate[N]) bool
}

// AnyFinder returns an arbitrary match.
type AnyFinder[N core.Node[N]] interface {
	Process[N]

	// FindAny returns some reachable node satisfying pred. Which one is
	// strategy-dependent and, for parallel strategies, may vary between runs.
	FindAny(pred core.Predicate[N]) (N, bool)
}

// FirstFinder returns a match at minimum edge distance from the root.
type FirstFinder[N core.Node[N]] interface {
	Process[N]

	// FindFirst returns a node satisfying pred whose distance from the root
	// is minimal among all matches.
	FindFirst(pred core.Predicate[N]) (N, bool)
}

// Searcher is the capability set every strategy provides.
type Searcher[N core.Node[N]] interface {
	Container[N]
	AnyFinder[N]
}

// ShortestSearcher is a Searcher that can also find a nearest match.
type ShortestSearcher[N core.Node[N]] interface {
	Searcher[N]
	FirstFinder[N]
}

// Operation names the query kind in logs, spans and metric labels.
type Operation string

const (
	OpContains  Operation = "Contains"
	OpFindAny   Operation = "FindAny"
	OpFindFirst Operation = "FindFirst"
)
