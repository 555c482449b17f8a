package nodify

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/nodify/core"
	"github.com/katalvlaran/nodify/dfs"
	"github.com/katalvlaran/nodify/process"
)

var (
	// ErrUnknownStrategy is returned for a strategy name nodify does not know.
	ErrUnknownStrategy = errors.New("nodify: unknown strategy")

	// ErrStrategyUnavailable is returned for a known strategy that was not
	// compiled in (nodify_noparallel) or lacks the requested capability.
	ErrStrategyUnavailable = errors.New("nodify: strategy unavailable")
)

// Strategy selects a traversal implementation at construction time.
type Strategy string

// StrategyDFS is the sequential depth-first search, always available.
const StrategyDFS Strategy = "dfs"

// String returns the canonical strategy name.
func (s Strategy) String() string { return string(s) }

// compiled lists the strategies of this build in preference order.
var compiled = []Strategy{StrategyDFS}

// canonical maps normalized spellings to canonical names, including the
// ones this build may not contain.
var canonical = map[string]Strategy{
	"dfs":           "dfs",
	"sequential":    "dfs",
	"paralleldfs":   "parallel-dfs",
	"pdfs":          "parallel-dfs",
	"deltastepping": "delta-stepping",
	"delta":         "delta-stepping",
}

func known(s Strategy) bool {
	for _, c := range canonical {
		if c == s {
			return true
		}
	}

	return false
}

// Strategies returns the strategies compiled into this build.
func Strategies() []Strategy { return slices.Clone(compiled) }

// Available reports whether s is compiled into this build.
func Available(s Strategy) bool { return slices.Contains(compiled, s) }

// ParseStrategy resolves a case-insensitive strategy name; dashes and
// underscores are ignored ("Parallel_DFS" is "parallel-dfs").
// Returns ErrUnknownStrategy or ErrStrategyUnavailable.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	s, ok := canonical[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	if !Available(s) {
		return "", fmt.Errorf("%w: %q not compiled into this build", ErrStrategyUnavailable, s)
	}

	return s, nil
}

// SupportsFindFirst reports whether s answers minimum-distance queries.
func SupportsFindFirst(s Strategy) bool { return s == "delta-stepping" && Available(s) }

// New constructs a process over root using strategy s. The result offers
// Contains and FindAny; use NewShortest for FindFirst.
// Returns ErrUnknownStrategy, ErrStrategyUnavailable or
// process.ErrOptionViolation.
func New[N core.Node[N]](root N, s Strategy, opts ...process.Option) (process.Searcher[N], error) {
	if s == StrategyDFS {
		d, err := dfs.New(root, opts...)
		if err != nil {
			return nil, err
		}

		return d, nil
	}
	if !known(s) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}

	return newParallel(root, s, opts...)
}

// NewShortest constructs the minimum-distance capable process over root.
// Returns ErrStrategyUnavailable when built without parallel strategies.
func NewShortest[N core.Node[N]](root N, opts ...process.Option) (process.ShortestSearcher[N], error) {
	return newShortest(root, opts...)
}
