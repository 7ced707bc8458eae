// Package core defines the labeled, undirected graph model consumed by the
// refinement engine, together with a compact indexed arena built from it.
//
// The Graph G = (V,E) is a plain value:
//
//   - Nodes carry a string ID (unique within the graph) and a non-negative
//     integer Label (the initial color).
//   - Edges are undirected pairs {Source, Target}. Duplicate edges and
//     self-loops are not rejected; each edge contributes its endpoints to
//     each other's neighbor multiset once.
//   - Graph is serializable (json/yaml tags) so scenario files and CLI
//     output share the same shape.
//
// Why a value type and not a locked container?
//
//	Callers build a graph once and hand it to an algorithm that only reads it.
//	Nothing mutates a Graph concurrently, so the model carries no locks.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddNode(id string, label int) error  // O(n) duplicate scan
//	AddEdge(source, target string) error // O(1), endpoints checked by Validate
//
//	// Queries
//	HasNode(id string) bool
//	NodeIDs() []string      // sorted ascending
//	NodeCount(), EdgeCount()
//
//	// Copies
//	Clone() *Graph
//	Relabel(rename map[string]string) (*Graph, error)
//
//	// Checking and indexing
//	Validate() error
//	BuildIndex(g *Graph) (*Index, error)
//
// Index
//
//	BuildIndex maps every node ID to a dense integer position [0..n) in
//	ascending ID order and stores adjacency as [][]int. Algorithms keep
//	per-node state in slices addressed by that position, so hot loops never
//	hash strings.
//
// Errors:
//
//	ErrGraphNil       - graph pointer is nil.
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - node ID already present.
//	ErrNegativeLabel  - initial label below zero.
//	ErrNodeNotFound   - an edge endpoint or lookup references an unknown ID.
package core
