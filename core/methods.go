// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction, queries, copies and validation.
//
// Determinism:
//   - NodeIDs() returns IDs sorted lexicographically ascending.
//   - Validate() reports node problems in ID order, then the first dangling edge in slice order.

package core

import (
	"fmt"
	"sort"
)

// AddNode appends a node with the given ID and initial label.
//
// Implementation:
//   - Stage 1: Reject empty ID (ErrEmptyNodeID) and negative label (ErrNegativeLabel).
//   - Stage 2: Scan existing nodes for the same ID (ErrDuplicateNode).
//   - Stage 3: Append.
//
// Complexity:
//   - Time O(V), Space O(1) amortized.
func (g *Graph) AddNode(id string, label int) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if label < 0 {
		return fmt.Errorf("%w: %q has label %d", ErrNegativeLabel, id, label)
	}
	if g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label})

	return nil
}

// AddEdge appends the undirected edge {source, target}.
//
// Endpoints are not checked here so that graphs can be assembled in any
// order (edges before nodes); Validate and BuildIndex report dangling
// endpoints with ErrNodeNotFound.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(source, target string) error {
	if source == "" || target == "" {
		return ErrEmptyNodeID
	}
	g.Edges = append(g.Edges, Edge{Source: source, Target: target})

	return nil
}

// HasNode reports whether a node with the given ID exists (empty ID ⇒ false).
// Complexity: O(V).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return true
		}
	}

	return false
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i := range g.Nodes {
		ids[i] = g.Nodes[i].ID
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Clone returns a deep copy of g. A nil receiver yields nil.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := &Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(c.Nodes, g.Nodes)
	copy(c.Edges, g.Edges)

	return c
}

// Relabel returns a copy of g with node IDs renamed through rename.
// IDs absent from rename keep their value. Labels and edge structure are
// preserved, so the result is isomorphic to g whenever the renaming is
// injective.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrEmptyNodeID if rename maps an ID to "".
//   - ErrDuplicateNode if two nodes end up with the same ID.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Relabel(rename map[string]string) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	name := func(id string) string {
		if to, ok := rename[id]; ok {
			return to
		}
		return id
	}

	out := &Graph{
		Nodes: make([]Node, 0, len(g.Nodes)),
		Edges: make([]Edge, 0, len(g.Edges)),
	}
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		id := name(n.ID)
		if id == "" {
			return nil, fmt.Errorf("Relabel: %q: %w", n.ID, ErrEmptyNodeID)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("Relabel: %q -> %q: %w", n.ID, id, ErrDuplicateNode)
		}
		seen[id] = struct{}{}
		out.Nodes = append(out.Nodes, Node{ID: id, Label: n.Label})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, Edge{Source: name(e.Source), Target: name(e.Target)})
	}

	return out, nil
}

// Validate checks node well-formedness and edge endpoints.
//
// Implementation:
//   - Stage 1: Every node has a non-empty, unique ID and a non-negative label.
//   - Stage 2: Every edge endpoint names an existing node.
//
// Errors:
//   - ErrGraphNil, ErrEmptyNodeID, ErrDuplicateNode, ErrNegativeLabel,
//     ErrNodeNotFound (wrapped with context).
//
// Complexity:
//   - Time O(V log V + E), Space O(V+E).
func (g *Graph) Validate() error {
	_, err := BuildIndex(g)

	return err
}
