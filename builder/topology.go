// SPDX-License-Identifier: MIT
// Package: nodify/builder
//
// topology.go - deterministic topologies.
//
// Edge policy on directed graphs:
//   • Path, Cycle, BinaryTree: forward edges only (index order / parent→child).
//   • Star, Grid: both directions, so every vertex reaches every other.
//
// Determinism:
//   • Vertices are added in index order (Grid: row-major).
//   • Edges are emitted in a stable, documented order.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/nodify/adjacency"
)

// Method tags and minima.
const (
	MethodPath       = "Path"
	MethodCycle      = "Cycle"
	MethodStar       = "Star"
	MethodBinaryTree = "BinaryTree"
	MethodGrid       = "Grid"

	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinTreeDepth  = 1
	MinGridDim    = 1

	// CenterVertexID is the fixed hub ID used by Star.
	CenterVertexID = "Center"
)

// Path returns a Constructor that builds P_n: 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodPath, n, cfg); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i), cfg.idFn(i+1), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: i→(i+1)%n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodCycle, n, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a hub "Center" with n-1 leaves
// idFn(1..n-1) (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", MethodStar, CenterVertexID, ErrConstructFailed, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodStar, CenterVertexID, cfg.idFn(i), true); err != nil {
				return err
			}
		}

		return nil
	}
}

// BinaryTree returns a Constructor that builds a complete binary tree of
// the given depth (2^depth - 1 vertices, depth ≥ 1). Vertex i has children
// 2i+1 and 2i+2 in heap order, so the root is idFn(0).
// Complexity: O(2^depth).
func BinaryTree(depth int) Constructor {
	return func(g *adjacency.Graph, cfg builderConfig) error {
		if depth < MinTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", MethodBinaryTree, depth, MinTreeDepth, ErrTooFewVertices)
		}
		n := 1<<depth - 1
		if err := addVertices(g, MethodBinaryTree, n, cfg); err != nil {
			return err
		}
		for i := 0; 2*i+1 < n; i++ {
			for _, child := range []int{2*i + 1, 2*i + 2} {
				if err := addEdge(g, MethodBinaryTree, cfg.idFn(i), cfg.idFn(child), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid
// with fixed IDs "r,c". For each cell it emits Right then Bottom.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *adjacency.Graph, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w: %w", MethodGrid, GridID(r, c), ErrConstructFailed, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, MethodGrid, u, GridID(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, MethodGrid, u, GridID(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID formats a grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
