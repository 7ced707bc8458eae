// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes via cfg.id in ascending index order (0..n-1).
//   • Emits every unordered pair {i,j}, i<j, in lexicographic (i,j) order.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
