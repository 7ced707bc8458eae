// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node IDs use a fixed, documented scheme "r,c" (row-major order), scoped.
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//   • Labels come from cfg.label(r*cols + c).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.
//
// Determinism:
//   • Stable node order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

const gridIDFmt = "%d,%d" // "r,c"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cell := func(r, c int) string {
			return cfg.named(fmt.Sprintf(gridIDFmt, r, c))
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addLabeled(g, methodGrid, cell(r, c), cfg.label(r*cols+c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
