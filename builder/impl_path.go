// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.id in ascending index order (0..n-1), labeled cfg.label(i).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
