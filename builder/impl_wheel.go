// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub node.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Hub "Center" has construction index 0; rim nodes 1..n-1 via cfg.id.
//   • Emits rim edges first (ring order), then spokes in rim order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		hub, err := addHub(g, cfg, methodWheel)
		if err != nil {
			return err
		}
		rim, err := addNodes(g, cfg, methodWheel, 1, n-1)
		if err != nil {
			return err
		}
		if err = addRing(g, methodWheel, rim); err != nil {
			return err
		}
		return addSpokes(g, methodWheel, hub, rim)
	}
}
