// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_house.go - implementation of House() constructor.
//
// Shape:
//
//	    4
//	   / \
//	  0---1
//	  |   |
//	  3---2
//
// Contract:
//   • Base nodes have construction indices 0..3 and form the cycle 0-1-2-3-0.
//   • The apex has index 4 and is adjacent to the base nodes 0 and 1.
//   • Labels come from cfg.label(idx); WithLabels(1, 1, 1, 1, 2) gives the
//     usual "base 1, apex 2" fixture.

package builder

import (
	"github.com/katalvlaran/wlrefine/core"
)

const houseApex = 4

// House returns a Constructor that builds the 5-node house graph.
func House() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addNodes(g, cfg, methodHouse, 0, HouseNodes)
		if err != nil {
			return err
		}
		if err = addRing(g, methodHouse, ids[:houseApex]); err != nil {
			return err
		}
		if err = addEdge(g, methodHouse, ids[houseApex], ids[0]); err != nil {
			return err
		}
		return addEdge(g, methodHouse, ids[houseApex], ids[1])
	}
}
