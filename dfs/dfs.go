package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wlrefine/core"
)

// walker encapsulates state during DFS.
type walker struct {
	ix      *core.Index
	opts    DFSOptions
	visited []bool
	res     *DFSResult
}

// DFS performs depth-first search on g from startID, or over every
// component with WithFullTraversal (startID is then ignored). Neighbors
// are explored in ascending ID order, so the result depends only on the
// graph, not on its slice order.
//
// Errors: ErrGraphNil, ErrInvalidGraph, ErrStartVertexNotFound, the
// context error on cancellation, or a wrapped hook error. On a hook error
// Order is cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ix, err := core.BuildIndex(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	n := ix.Len()
	w := &walker{
		ix:      ix,
		opts:    o,
		visited: make([]bool, n),
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	if o.FullTraversal {
		for pos := 0; pos < n; pos++ {
			if !w.visited[pos] {
				if err = w.traverse(pos, 0); err != nil {
					return w.res, err
				}
			}
		}
		return w.res, nil
	}

	start, ok := ix.Lookup(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}
	return w.res, w.traverse(start, 0)
}

// traverse visits pos at depth and recurses into unvisited neighbors.
func (w *walker) traverse(pos, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	id := w.ix.ID(pos)
	w.visited[pos] = true
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for _, nb := range sortedNeighbors(w.ix, pos) {
		if w.visited[nb] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			break
		}
		w.res.Parent[w.ix.ID(nb)] = id
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

// sortedNeighbors returns a sorted copy of pos's neighbor positions.
func sortedNeighbors(ix *core.Index, pos int) []int {
	nbs := append([]int(nil), ix.Neighbors(pos)...)
	sort.Ints(nbs)
	return nbs
}
