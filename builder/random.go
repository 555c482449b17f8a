// SPDX-License-Identifier: MIT
// Package: nodify/builder
//
// random.go - stochastic topologies.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic without one.
//   - One Bernoulli trial per admissible pair in a fixed order, so a fixed
//     seed reproduces the graph exactly.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nodify/adjacency"
)

const (
	MethodRandomSparse = "RandomSparse"
	MethodRandomDAG    = "RandomDAG"

	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomSparse returns a Constructor sampling an Erdős–Rényi-like graph on
// n vertices with independent edge probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j); self-loops only if g.Looped().
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if err := validateRandom(MethodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		if err := addVertices(g, MethodRandomSparse, n, cfg); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			lo := i + 1
			if g.Directed() {
				lo = 0
			}
			for j := lo; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !trial(cfg.rng, p) {
					continue
				}
				if err := addEdge(g, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomDAG returns a Constructor sampling a directed acyclic graph: each
// forward pair i→j (i<j) is an edge with probability p. The index order is
// a topological order. Requires a directed graph.
// Complexity: O(n²) trials.
func RandomDAG(n int, p float64) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if err := validateRandom(MethodRandomDAG, n, p, cfg); err != nil {
			return err
		}
		if !g.Directed() {
			return fmt.Errorf("%s: graph must be directed: %w", MethodRandomDAG, ErrUnsupportedGraphMode)
		}
		if err := addVertices(g, MethodRandomDAG, n, cfg); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg.rng, p) {
					continue
				}
				if err := addEdge(g, MethodRandomDAG, cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// validateRandom checks the shared preconditions, in priority order:
// size, probability, RNG presence.
func validateRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < minRandomVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// trial is one Bernoulli(p) draw; p ∈ {0,1} consumes no randomness.
func trial(rng *rand.Rand, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return rng.Float64() < p
}
