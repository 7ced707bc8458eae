// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Dense, read-only arena view of a Graph.
//
// Determinism:
//   - Positions are assigned in ascending node-ID order, so the same node
//     set always yields the same positions regardless of slice order.
//   - Neighbor lists keep edge order; algorithms needing order-free results
//     must sort what they read from them.

package core

import (
	"fmt"
	"sort"
)

// Index is an arena of node records addressed by integer position.
// It is immutable after BuildIndex and safe for concurrent readers.
type Index struct {
	ids    []string       // position → node ID (ascending)
	labels []int          // position → initial label
	adj    [][]int        // position → neighbor positions (multiset)
	lookup map[string]int // node ID → position
}

// BuildIndex validates g and builds its arena.
//
// Implementation:
//   - Stage 1: Check nodes (ErrEmptyNodeID, ErrDuplicateNode, ErrNegativeLabel)
//     and assign positions in ascending ID order.
//   - Stage 2: Resolve every edge endpoint (ErrNodeNotFound) and append each
//     endpoint to the other's adjacency.
//
// Complexity:
//   - Time O(V log V + E), Space O(V+E).
func BuildIndex(g *Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix, err := indexNodes(g)
	if err != nil {
		return nil, err
	}

	for i, e := range g.Edges {
		u, ok := ix.lookup[e.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d source %q", ErrNodeNotFound, i, e.Source)
		}
		v, ok := ix.lookup[e.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d target %q", ErrNodeNotFound, i, e.Target)
		}
		ix.adj[u] = append(ix.adj[u], v)
		ix.adj[v] = append(ix.adj[v], u)
	}

	return ix, nil
}

// indexNodes performs Stage 1 of BuildIndex.
func indexNodes(g *Graph) (*Index, error) {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	n := len(nodes)
	ix := &Index{
		ids:    make([]string, n),
		labels: make([]int, n),
		adj:    make([][]int, n),
		lookup: make(map[string]int, n),
	}
	for i, nd := range nodes {
		if nd.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if nd.Label < 0 {
			return nil, fmt.Errorf("%w: %q has label %d", ErrNegativeLabel, nd.ID, nd.Label)
		}
		if i > 0 && nodes[i-1].ID == nd.ID {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, nd.ID)
		}
		ix.ids[i] = nd.ID
		ix.labels[i] = nd.Label
		ix.lookup[nd.ID] = i
	}

	return ix, nil
}

// Len returns the number of nodes.
func (ix *Index) Len() int { return len(ix.ids) }

// ID returns the node ID at position i.
func (ix *Index) ID(i int) string { return ix.ids[i] }

// Label returns the initial label at position i.
func (ix *Index) Label(i int) int { return ix.labels[i] }

// Neighbors returns the neighbor positions of i. The slice is shared with
// the index and must not be modified.
func (ix *Index) Neighbors(i int) []int { return ix.adj[i] }

// Degree returns the size of i's neighbor multiset.
func (ix *Index) Degree(i int) int { return len(ix.adj[i]) }

// Lookup returns the position of id, or false if id is unknown.
func (ix *Index) Lookup(id string) (int, bool) {
	i, ok := ix.lookup[id]
	return i, ok
}

// IDs returns a copy of all node IDs in position order (ascending).
func (ix *Index) IDs() []string {
	out := make([]string, len(ix.ids))
	copy(out, ix.ids)

	return out
}
