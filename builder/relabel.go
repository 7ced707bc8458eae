// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// relabel.go - structure-preserving copies for invariance checks.
//
// Both helpers keep every initial label and every adjacency; they only
// change what an isomorphism test must ignore: node names, the order of
// the node and edge slices, and the orientation of each edge pair.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wlrefine/core"
)

// RandomRelabel returns a copy of g whose node IDs are replaced by a random
// permutation of the fresh names "p0".."p{n-1}". Node and edge order are
// shuffled and each edge's endpoints are swapped with probability ½.
//
// Errors: core.ErrGraphNil, ErrNeedRandSource, and core.Relabel failures.
func RandomRelabel(g *core.Graph, rng *rand.Rand) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("RandomRelabel: %w", core.ErrGraphNil)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomRelabel: %w", ErrNeedRandSource)
	}

	ids := g.NodeIDs()
	perm := rng.Perm(len(ids))
	rename := make(map[string]string, len(ids))
	for i, id := range ids {
		rename[id] = PrefixedIDFn("p")(perm[i])
	}

	out, err := g.Relabel(rename)
	if err != nil {
		return nil, fmt.Errorf("RandomRelabel: %w", err)
	}
	shuffle(out, rng)

	return out, nil
}

// Shuffled returns a copy of g with the same IDs and a shuffled node and
// edge order; edge endpoints are flipped at random.
func Shuffled(g *core.Graph, rng *rand.Rand) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Shuffled: %w", core.ErrGraphNil)
	}
	if rng == nil {
		return nil, fmt.Errorf("Shuffled: %w", ErrNeedRandSource)
	}

	out := g.Clone()
	shuffle(out, rng)

	return out, nil
}

func shuffle(g *core.Graph, rng *rand.Rand) {
	rng.Shuffle(len(g.Nodes), func(i, j int) { g.Nodes[i], g.Nodes[j] = g.Nodes[j], g.Nodes[i] })
	rng.Shuffle(len(g.Edges), func(i, j int) { g.Edges[i], g.Edges[j] = g.Edges[j], g.Edges[i] })
	for i := range g.Edges {
		if rng.Intn(2) == 1 {
			g.Edges[i].Source, g.Edges[i].Target = g.Edges[i].Target, g.Edges[i].Source
		}
	}
}
