// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub node with fixed ID "Center" (scoped), construction index 0.
//   - Adds leaves via cfg.id in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center-leaf[i].
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Star returns a Constructor that builds a star topology with n nodes:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub, err := addHub(g, cfg, methodStar)
		if err != nil {
			return err
		}
		leaves, err := addNodes(g, cfg, methodStar, 1, n-1)
		if err != nil {
			return err
		}
		return addSpokes(g, methodStar, hub, leaves)
	}
}

// addHub inserts the scoped "Center" node with construction index 0.
func addHub(g *core.Graph, cfg builderConfig, method string) (string, error) {
	hub := cfg.named(CenterVertexID)
	if err := addLabeled(g, method, hub, cfg.label(0)); err != nil {
		return "", err
	}
	return hub, nil
}

// addSpokes connects hub to every rim node in order.
func addSpokes(g *core.Graph, method, hub string, rim []string) error {
	for _, leaf := range rim {
		if err := addEdge(g, method, hub, leaf); err != nil {
			return err
		}
	}
	return nil
}
