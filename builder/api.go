// SPDX-License-Identifier: MIT
// Package: nodify/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in topology.go and random.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/nodify/adjacency"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before mutating, return
// wrapped sentinel errors and never panic.
type Constructor func(g *adjacency.Graph, cfg builderConfig) error

// BuildGraph creates a new adjacency.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []adjacency.GraphOption, bopts []BuilderOption, cons ...Constructor) (*adjacency.Graph, error) {
	g := adjacency.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to overlay a
// second topology on a graph built earlier.
func Apply(g *adjacency.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addEdge adds u→v and, when mirror is set on a directed graph, v→u.
// Graph errors are tagged with method and ErrConstructFailed.
func addEdge(g *adjacency.Graph, method, u, v string, mirror bool) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}
	if mirror && g.Directed() {
		if err := g.AddEdge(v, u); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, v, u, ErrConstructFailed, err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices(g *adjacency.Graph, method string, n int, cfg builderConfig) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}
