package dfs

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// FindCycle returns one cycle of the undirected multigraph g as the node
// sequence along it (first node not repeated), or nil if g is a forest.
// A self-loop on v is the cycle [v]; two parallel u-v edges are [u v].
// The search is deterministic: roots and neighbors go in ascending ID
// order and the first back edge found wins.
//
// Complexity: O(V log V + E log E) time, O(V+E) space.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix, err := core.BuildIndex(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	f := &cycleFinder{
		ix:     ix,
		state:  make([]int, ix.Len()),
		parent: make([]int, ix.Len()),
	}
	for pos := 0; pos < ix.Len(); pos++ {
		if f.state[pos] != White {
			continue
		}
		f.parent[pos] = -1
		if f.visit(pos) {
			out := make([]string, len(f.found))
			for i, p := range f.found {
				out[i] = ix.ID(p)
			}
			return out, nil
		}
	}
	return nil, nil
}

// IsForest reports whether g is acyclic. Self-loops and parallel edges
// count as cycles.
func IsForest(g *core.Graph) (bool, error) {
	c, err := FindCycle(g)
	if err != nil {
		return false, err
	}
	return c == nil, nil
}

type cycleFinder struct {
	ix     *core.Index
	state  []int
	parent []int
	path   []int // Gray nodes, root first
	found  []int
}

// visit explores u and reports whether a cycle was recorded in found.
func (f *cycleFinder) visit(u int) bool {
	f.state[u] = Gray
	f.path = append(f.path, u)

	// The tree edge to the parent shows up once in u's list per parallel
	// copy; only the first copy is the tree edge itself.
	treeEdgeSeen := false
	for _, v := range sortedNeighbors(f.ix, u) {
		switch {
		case v == u:
			f.found = []int{u}
			return true
		case v == f.parent[u] && !treeEdgeSeen:
			treeEdgeSeen = true
		case f.state[v] == Gray:
			for i := len(f.path) - 1; i >= 0; i-- {
				if f.path[i] == v {
					f.found = append([]int(nil), f.path[i:]...)
					return true
				}
			}
		case f.state[v] == White:
			f.parent[v] = u
			if f.visit(v) {
				return true
			}
		}
	}

	f.state[u] = Black
	f.path = f.path[:len(f.path)-1]
	return false
}
