package scenario

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wlrefine/builder"
	"github.com/katalvlaran/wlrefine/core"
)

// Graphs builds both graphs of s.
func (s *Scenario) Graphs() (a, b *core.Graph, err error) {
	if a, err = s.GraphA.Build(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: graph_a: %w", ErrInvalid, s.Name, err)
	}
	if b, err = s.GraphB.Build(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: graph_b: %w", ErrInvalid, s.Name, err)
	}
	return a, b, nil
}

// Build constructs the graph: generators in order, then explicit nodes and
// edges, then the optional permutation. The result is validated.
func (gs GraphSpec) Build() (*core.Graph, error) {
	cons := make([]builder.Constructor, 0, len(gs.Generators))
	for i, gen := range gs.Generators {
		con, err := builder.Shape{Kind: gen.Kind, N: gen.N, Degree: gen.Degree, P: gen.P}.Constructor()
		if err != nil {
			return nil, fmt.Errorf("generators[%d]: %w", i, err)
		}
		var opts []builder.BuilderOption
		if gen.Seed != nil {
			opts = append(opts, builder.WithSeed(*gen.Seed))
		}
		if gen.IDs != "" {
			idFn, err := builder.IDScheme(gen.IDs)
			if err != nil {
				return nil, fmt.Errorf("generators[%d]: %w", i, err)
			}
			opts = append(opts, builder.WithIDScheme(idFn))
		}
		if len(gen.Labels) > 0 {
			opts = append(opts, builder.WithLabels(gen.Labels...))
		}
		if len(opts) > 0 {
			con = builder.Configured(con, opts...)
		}
		cons = append(cons, builder.Scoped(gen.Prefix, con))
	}
	g, err := builder.BuildGraph(nil, cons...)
	if err != nil {
		return nil, err
	}

	for _, n := range gs.Nodes {
		if err = g.AddNode(n.ID, n.Label); err != nil {
			return nil, fmt.Errorf("nodes: %w", err)
		}
	}
	for _, e := range gs.Edges {
		if err = g.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("edges: %w", err)
		}
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	if gs.PermuteSeed != nil {
		return builder.RandomRelabel(g, rand.New(rand.NewSource(*gs.PermuteSeed)))
	}
	return g, nil
}
