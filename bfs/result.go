package bfs

import (
	"fmt"
	"slices"
)

// BFSResult is the outcome of one traversal. Order lists nodes in visit
// sequence, Depth their edge distance from the start, Parent their
// predecessor in the BFS tree (the start has none).
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns a shortest path start … dest, following Parent links.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, 0, r.Depth[dest]+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, nil
}

// Eccentricity is the largest depth reached: the distance from the start
// to the farthest visited node.
func (r *BFSResult) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		ecc = max(ecc, d)
	}
	return ecc
}
