// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes via cfg.id in ascending index order (0..n-1), labeled cfg.label(i).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(n) for the collected IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		return addRing(g, methodCycle, ids)
	}
}

// addNodes inserts construction indices [from, from+count) and returns their IDs.
func addNodes(g *core.Graph, cfg builderConfig, method string, from, count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := from; i < from+count; i++ {
		id, err := addNode(g, cfg, method, i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// addRing connects ids[i]-ids[(i+1)%len] for every i.
func addRing(g *core.Graph, method string, ids []string) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}
	return nil
}
