package wl

import "sort"

// Graph identifies which input graph a node belongs to.
type Graph int

const (
	// GraphA is the first argument of Refine.
	GraphA Graph = iota
	// GraphB is the second argument of Refine.
	GraphB
)

// String returns "A" or "B".
func (g Graph) String() string {
	if g == GraphA {
		return "A"
	}
	return "B"
}

// NodeRef names a node by (graph, id); ids are only unique within a graph.
type NodeRef struct {
	Graph Graph  `json:"graph" yaml:"graph"`
	ID    string `json:"id" yaml:"id"`
}

// Class is one color class of a step: every node carrying Label.
type Class struct {
	Label   LabelID   `json:"label" yaml:"label"`
	Members []NodeRef `json:"members" yaml:"members"`
}

// Classes returns the partition of both graphs' nodes induced by step.
// Classes are ordered by numeric label; members by graph, then id.
func Classes(step Step) []Class {
	byLabel := make(map[LabelID][]NodeRef)
	collect := func(g Graph, labels map[string]LabelID) {
		for id, l := range labels {
			byLabel[l] = append(byLabel[l], NodeRef{Graph: g, ID: id})
		}
	}
	collect(GraphA, step.LabelsA)
	collect(GraphB, step.LabelsB)

	keys := make([]LabelID, 0, len(byLabel))
	for l := range byLabel {
		keys = append(keys, l)
	}
	sortLabels(keys)

	out := make([]Class, 0, len(keys))
	for _, l := range keys {
		members := byLabel[l]
		sort.Slice(members, func(i, j int) bool {
			if members[i].Graph != members[j].Graph {
				return members[i].Graph < members[j].Graph
			}
			return members[i].ID < members[j].ID
		})
		out = append(out, Class{Label: l, Members: members})
	}
	return out
}

// SamePartition reports whether x and y cover the same nodes and group them
// into the same classes, whatever the raw label values. Because LabelIDs are
// never reused across steps, this is the only meaningful way to ask whether
// refinement changed anything between two steps.
func SamePartition(x, y Step) bool {
	fwd := make(map[LabelID]LabelID)
	bwd := make(map[LabelID]LabelID)
	match := func(lx, ly map[string]LabelID) bool {
		if len(lx) != len(ly) {
			return false
		}
		for id, a := range lx {
			b, ok := ly[id]
			if !ok {
				return false
			}
			if prev, seen := fwd[a]; seen && prev != b {
				return false
			}
			if prev, seen := bwd[b]; seen && prev != a {
				return false
			}
			fwd[a], bwd[b] = b, a
		}
		return true
	}
	return match(x.LabelsA, y.LabelsA) && match(x.LabelsB, y.LabelsB)
}

// StabilizedAt returns the first k ≥ 1 whose partition equals that of step
// k-1. WL refinement never splits a stable partition again, so every later
// step is stable too. ok is false if no such step exists in steps.
func StabilizedAt(steps []Step) (k int, ok bool) {
	for i := 1; i < len(steps); i++ {
		if SamePartition(steps[i-1], steps[i]) {
			return steps[i].K, true
		}
	}
	return 0, false
}

// Verdict returns the candidate verdict of the last step, false for an empty
// sequence. Refinement never merges classes, so a false verdict at any step
// stays false at every later step.
func Verdict(steps []Step) bool {
	if len(steps) == 0 {
		return false
	}
	return steps[len(steps)-1].IsIsomorphicCandidate
}
