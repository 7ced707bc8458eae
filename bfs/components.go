package bfs

import (
	"sort"

	"github.com/katalvlaran/wlrefine/core"
)

// Components returns the connected components of g. Each component lists
// its node IDs in ascending order; components are ordered by their
// smallest ID. An empty graph has no components.
//
// Complexity: O(V log V + E log d).
func Components(g *core.Graph) ([][]string, error) {
	ix, err := index(g)
	if err != nil {
		return nil, err
	}

	// One walker shares its visited set across searches; only the result
	// is reset per component.
	w := newWalker(ix, DefaultOptions())
	var out [][]string
	for start := 0; start < ix.Len(); start++ {
		if w.visited[start] {
			continue
		}
		w.res = &BFSResult{Depth: map[string]int{}, Parent: map[string]string{}}
		w.enqueue(start, 0, -1)
		if err = w.loop(); err != nil {
			return nil, err
		}
		ids := w.res.Order
		sort.Strings(ids)
		out = append(out, ids)
	}

	return out, nil
}

// Diameter returns the largest distance between two nodes of the same
// component, i.e. the largest eccentricity. Empty and edgeless graphs
// have diameter 0.
//
// Complexity: O(V·(V + E log d)).
func Diameter(g *core.Graph) (int, error) {
	ix, err := index(g)
	if err != nil {
		return 0, err
	}

	diam := 0
	for start := 0; start < ix.Len(); start++ {
		w := newWalker(ix, DefaultOptions())
		w.enqueue(start, 0, -1)
		if err = w.loop(); err != nil {
			return 0, err
		}
		diam = max(diam, w.res.Eccentricity())
	}
	return diam, nil
}
