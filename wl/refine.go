package wl

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wlrefine/core"
)

// side is the per-graph working state: the arena and the current label of
// every node, addressed by arena position.
type side struct {
	ix     *core.Index
	labels []uint64
}

// Refine runs WL-1 refinement on a and b for maxK rounds and returns the
// maxK+1 steps k = 0..maxK.
//
// Returns ErrInvalidHorizon when maxK < 0 and ErrInvalidGraphReference when
// either graph is nil, malformed, or has a dangling edge endpoint. On error
// no steps are returned.
func Refine(a, b *core.Graph, maxK int, opts ...Option) ([]Step, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if maxK < 0 {
		return nil, fmt.Errorf("%w: maxK=%d", ErrInvalidHorizon, maxK)
	}
	sa, err := newSide(a)
	if err != nil {
		return nil, fmt.Errorf("%w: graph A: %w", ErrInvalidGraphReference, err)
	}
	sb, err := newSide(b)
	if err != nil {
		return nil, fmt.Errorf("%w: graph B: %w", ErrInvalidGraphReference, err)
	}

	var (
		sides = [2]*side{sa, sb}
		steps = make([]Step, 0, maxK+1)
		c     counter
		step  Step
	)
	step, c = initialStep(sides, c, o)
	steps = append(steps, step)
	o.OnStep(step)

	for k := 1; k <= maxK; k++ {
		step, c = refineStep(k, sides, c, o)
		steps = append(steps, step)
		o.OnStep(step)
	}

	return steps, nil
}

// newSide indexes g; labels are filled by initialStep.
func newSide(g *core.Graph) (*side, error) {
	ix, err := core.BuildIndex(g)
	if err != nil {
		return nil, err
	}
	return &side{ix: ix, labels: make([]uint64, ix.Len())}, nil
}

// initialStep canonicalizes the raw initial labels of both graphs: distinct
// values ascending, one fresh id each.
func initialStep(sides [2]*side, c counter, o Options) (Step, counter) {
	seen := make(map[int]struct{})
	for _, s := range sides {
		for i := 0; i < s.ix.Len(); i++ {
			seen[s.ix.Label(i)] = struct{}{}
		}
	}
	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)

	assigned := make(map[int]uint64, len(values))
	mappings := make([]Mapping, 0, len(values))
	for _, v := range values {
		var id uint64
		id, c = c.mint()
		assigned[v] = id
		m := Mapping{Signature: initialSignature(v), Label: labelID(id)}
		mappings = append(mappings, m)
		o.OnSignature(0, m.Signature, m.Label)
	}

	for _, s := range sides {
		for i := 0; i < s.ix.Len(); i++ {
			s.labels[i] = assigned[s.ix.Label(i)]
		}
	}

	return buildStep(0, sides, mappings), c
}

// refineStep computes every node's signature from the current labels, pools
// the distinct signatures of both graphs, sorts them as strings and mints one
// id per signature in that order.
func refineStep(k int, sides [2]*side, c counter, o Options) (Step, counter) {
	var (
		sigs    [2][]string
		pool    = make(map[string]uint64)
		scratch []uint64
	)
	for si, s := range sides {
		sigs[si] = make([]string, s.ix.Len())
		for i := 0; i < s.ix.Len(); i++ {
			var sig string
			sig, scratch = signature(s.labels[i], s.ix.Neighbors(i), s.labels, scratch)
			sigs[si][i] = sig
			pool[sig] = 0
		}
	}

	distinct := make([]string, 0, len(pool))
	for sig := range pool {
		distinct = append(distinct, sig)
	}
	sort.Strings(distinct)

	mappings := make([]Mapping, 0, len(distinct))
	for _, sig := range distinct {
		var id uint64
		id, c = c.mint()
		pool[sig] = id
		m := Mapping{Signature: sig, Label: labelID(id)}
		mappings = append(mappings, m)
		o.OnSignature(k, m.Signature, m.Label)
	}

	// Labels are replaced only after every signature has been read, so
	// all nodes of step k see step k-1 labels.
	for si, s := range sides {
		for i, sig := range sigs[si] {
			s.labels[i] = pool[sig]
		}
	}

	return buildStep(k, sides, mappings), c
}
