package wl_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/wlrefine/builder"
	"github.com/katalvlaran/wlrefine/core"
	"github.com/katalvlaran/wlrefine/wl"
)

// randomGraph builds a G(n,p) graph with labels drawn from [0, palette).
func randomGraph(n int, seed int64, palette int) *core.Graph {
	if n == 0 {
		return core.NewGraph()
	}
	rng := rand.New(rand.NewSource(seed))
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(palette)
	}
	g, err := builder.Build(builder.RandomSparse(n, 0.3),
		builder.WithSeed(seed),
		builder.WithLabelFn(func(idx int) int { return labels[idx] }),
	)
	if err != nil {
		panic(err)
	}
	return g
}

// TestRefine_Properties checks the invariants of refinement over random
// labeled graphs.
func TestRefine_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	const maxK = 4

	// Every step assigns exactly one label per node.
	properties.Property("histograms conserve node counts", prop.ForAll(
		func(na, nb int, seed int64) bool {
			a, b := randomGraph(na, seed, 3), randomGraph(nb, seed+1, 3)
			steps, err := wl.Refine(a, b, maxK)
			if err != nil || len(steps) != maxK+1 {
				return false
			}
			for _, s := range steps {
				if sum(s.LabelCountsA) != na || sum(s.LabelCountsB) != nb {
					return false
				}
				if len(s.LabelsA) != na || len(s.LabelsB) != nb {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 14),
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	// Nodes separated at k-1 stay separated at k, in and across graphs.
	properties.Property("refinement never merges classes", prop.ForAll(
		func(na, nb int, seed int64) bool {
			a, b := randomGraph(na, seed, 2), randomGraph(nb, seed+7, 2)
			steps, err := wl.Refine(a, b, maxK)
			if err != nil {
				return false
			}
			for k := 1; k < len(steps); k++ {
				parent := make(map[wl.LabelID]wl.LabelID)
				ok := func(cur, prev map[string]wl.LabelID) bool {
					for id, l := range cur {
						if p, seen := parent[l]; seen && p != prev[id] {
							return false
						}
						parent[l] = prev[id]
					}
					return true
				}
				if !ok(steps[k].LabelsA, steps[k-1].LabelsA) || !ok(steps[k].LabelsB, steps[k-1].LabelsB) {
					return false
				}
				if len(steps[k].UniqueLabels) < len(steps[k-1].UniqueLabels) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 14),
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	// Ids are minted 1, 2, 3, ... and never reused; histogram keys of a
	// step are exactly that step's freshly minted ids that are in use.
	properties.Property("label ids are globally unique", prop.ForAll(
		func(na, nb int, seed int64) bool {
			a, b := randomGraph(na, seed, 4), randomGraph(nb, seed-3, 4)
			steps, err := wl.Refine(a, b, maxK)
			if err != nil {
				return false
			}
			next := 1
			for _, s := range steps {
				minted := make(map[wl.LabelID]struct{}, len(s.Mappings))
				for _, m := range s.Mappings {
					if string(m.Label) != strconv.Itoa(next) {
						return false
					}
					next++
					minted[m.Label] = struct{}{}
				}
				if len(minted) != len(s.UniqueLabels) {
					return false
				}
				for _, l := range s.UniqueLabels {
					if _, ok := minted[l]; !ok {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 14),
		gen.IntRange(0, 14),
		gen.Int64(),
	))

	// Node and edge slice order never changes the output.
	properties.Property("output ignores input order", prop.ForAll(
		func(na, nb int, seed int64) bool {
			a, b := randomGraph(na, seed, 3), randomGraph(nb, seed+5, 3)
			rng := rand.New(rand.NewSource(seed))
			sa, err := builder.Shuffled(a, rng)
			if err != nil {
				return false
			}
			sb, err := builder.Shuffled(b, rng)
			if err != nil {
				return false
			}
			x, errX := wl.Refine(a, b, maxK)
			y, errY := wl.Refine(sa, sb, maxK)
			if errX != nil || errY != nil {
				return false
			}
			return cmp.Diff(x, y) == ""
		},
		gen.IntRange(1, 14),
		gen.IntRange(1, 14),
		gen.Int64(),
	))

	// A consistently renamed copy is a candidate at every step.
	properties.Property("renamed copies are always candidates", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomGraph(n, seed, 3)
			p, err := builder.RandomRelabel(g, rand.New(rand.NewSource(seed)))
			if err != nil {
				return false
			}
			steps, err := wl.Refine(g, p, maxK)
			if err != nil {
				return false
			}
			for _, s := range steps {
				if !s.IsIsomorphicCandidate {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 16),
		gen.Int64(),
	))

	// Once false, the verdict stays false.
	properties.Property("rejection is monotone", prop.ForAll(
		func(na, nb int, seed int64) bool {
			steps, err := wl.Refine(randomGraph(na, seed, 2), randomGraph(nb, seed+11, 2), maxK)
			if err != nil {
				return false
			}
			rejected := false
			for _, s := range steps {
				if rejected && s.IsIsomorphicCandidate {
					return false
				}
				rejected = rejected || !s.IsIsomorphicCandidate
			}
			return true
		},
		gen.IntRange(1, 10),
		gen.IntRange(1, 10),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestRefine_DeterministicAcrossRuns(t *testing.T) {
	a, b := randomGraph(30, 1, 4), randomGraph(30, 2, 4)
	x, err := wl.Refine(a, b, 6)
	if err != nil {
		t.Fatal(err)
	}
	y, err := wl.Refine(a, b, 6)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(x, y); diff != "" {
		t.Errorf("Refine not deterministic (-first +second):\n%s", diff)
	}
}

func sum(h map[wl.LabelID]int) int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}
