// Package scenario describes refinement runs declaratively: two graphs and
// a horizon, written as YAML.
//
// A graph is built from generators (named topologies from the builder
// package, each optionally scoped and labeled), explicit nodes and edges,
// or both. Generators run first, so explicit edges may connect generated
// nodes. A graph may finally be renamed by a seeded random permutation,
// which is how permuted copies are expressed.
//
//	name: path-vs-star
//	max_k: 2
//	graph_a:
//	  generators:
//	    - {kind: path, n: 5, labels: [2, 1, 1, 1, 2]}
//	graph_b:
//	  generators:
//	    - {kind: star, n: 5, labels: [3, 2]}
//
// Edges accept either a flow pair or a mapping:
//
//	edges:
//	  - [a, b]
//	  - {source: b, target: c}
//
// Built-in scenarios are embedded in the binary; List names them and Load
// returns one. Parse and LoadFile accept user files. Every loader validates
// field ranges and builds both graphs before returning, so a returned
// Scenario is always runnable.
//
// Errors
//
//   - ErrNotFound  Load was given an unknown name.
//   - ErrInvalid   the document does not decode, fails validation, or
//     describes a graph that cannot be built (wraps the cause).
package scenario
