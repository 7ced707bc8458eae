// Package dfs implements depth-first search and cycle detection on the
// undirected multigraphs of package core.
//
//   - DFS(g, start, opts...): post-order, depths, parents; hooks,
//     cancellation, depth limit and full (forest) traversal.
//   - FindCycle(g): one witness cycle, or nil for a forest.
//   - IsForest(g): acyclicity, with self-loops and parallel edges
//     counted as cycles.
//
// Neighbors are always taken in ascending ID order, so results do not
// depend on the order of g.Nodes or g.Edges.
//
// Complexity: Time O(V+E) plus neighbor sorting, Memory O(V+E).
package dfs
