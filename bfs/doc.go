// Package bfs walks a core.Graph breadth-first.
//
// BFS(g, start, opts...) visits the component of start in non-decreasing
// distance and returns a BFSResult: the visit Order, the Depth of every
// reached node and its Parent in the BFS tree. PathTo and Eccentricity
// read shortest paths and the farthest distance off that result.
//
// Components(g) and Diameter(g) profile a whole graph. Refinement alone
// cannot tell a 6-cycle from two triangles; their component counts and
// diameters (3 and 1) can, so the report package prints both next to the
// refinement verdict.
//
// Determinism
//
//	Neighbors are enqueued in ascending node-ID order whatever the order
//	of the edge slice, so visit sequences are reproducible. Self-loops and
//	parallel edges never enqueue a node twice.
//
// Options
//
//	WithContext(ctx)         stop with ctx.Err() once ctx is done
//	WithMaxDepth(d)          do not expand past depth d (0 = no limit)
//	WithFilterNeighbor(fn)   skip the edge curr-nbr when fn returns false
//	WithOnEnqueue(fn)        node joins the frontier
//	WithOnDequeue(fn)        node leaves the frontier
//	WithOnVisit(fn)          node is visited; an error aborts the walk
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, and
//	ErrInvalidGraph wrapping the core sentinel for malformed graphs.
//	OnVisit errors are returned wrapped with the node ID.
//
// Complexity is O(V log V + E log d) per walk, index construction
// included; Diameter runs one walk per node.
package bfs
