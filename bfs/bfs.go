package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/wlrefine/core"
)

// queueItem pairs a node position with its BFS depth and its parent's position.
type queueItem struct {
	pos    int
	depth  int
	parent int // -1 for root
}

// walker encapsulates mutable BFS state over one core.Index.
type walker struct {
	ix      *core.Index
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrInvalidGraph for graphs core rejects, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ix, err := index(g)
	if err != nil {
		return nil, err
	}
	start, ok := ix.Lookup(startID)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(ix, o)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// index validates g and builds its arena.
func index(g *core.Graph) (*core.Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix, err := core.BuildIndex(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	return ix, nil
}

func newWalker(ix *core.Index, o BFSOptions) *walker {
	n := ix.Len()
	return &walker{
		ix:      ix,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks pos visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(pos, d, parent int) {
	id := w.ix.ID(pos)
	w.visited[pos] = true
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.ix.ID(parent)
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{pos: pos, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.ix.ID(item.pos), item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.ix.ID(item.pos)
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Neighbors are taken in ascending ID order so the visit
// sequence does not depend on edge order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	curr := w.ix.ID(item.pos)
	for _, nb := range sortedNeighbors(w.ix, item.pos) {
		if w.visited[nb] {
			continue
		}
		if !w.opts.FilterNeighbor(curr, w.ix.ID(nb)) {
			continue
		}
		w.enqueue(nb, nextDepth, item.pos)
	}
}

// sortedNeighbors returns a sorted copy of pos's neighbor positions.
// Positions follow ID order, so this is ID order too.
func sortedNeighbors(ix *core.Index, pos int) []int {
	nbs := append([]int(nil), ix.Neighbors(pos)...)
	sort.Ints(nbs)
	return nbs
}
