// Package builder provides deterministic, functional-options-style
// constructors for labeled fixture graphs used to exercise and demonstrate
// refinement: cycles, paths, stars, wheels, complete graphs, grids, the
// "house" graph, and seeded random sparse/regular graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): creates a core.Graph and runs the
//     constructors in order with one resolved builderConfig.
//     – Scoped(prefix, con): runs a constructor with every node ID
//     prefixed, so several topologies can share one graph as a disjoint
//     union (e.g. two triangles "t1:" and "t2:").
//     – ByKind(kind, n) and Shape{Kind, N, Degree, P}.Constructor(): resolve
//     a topology by name, as scenario documents do.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, label scheme, scope.
//   - Node-ID schemes (IDFn), set with WithIDScheme:
//     – by name through IDScheme: "decimal" (DefaultIDFn), "excel"
//     (ExcelColumnIDFn), "base36" (AlphanumericIDFn), "hex" (HexIDFn).
//     – SymbolIDFn ("A".."Z" only) and PrefixedIDFn(prefix).
//   - Initial-label schemes (LabelFn):
//     – WithConstantLabel(l), WithLabels(l0, l1, …), WithLabelFn(fn).
//     The default labels every node DefaultLabel.
//   - Copies for invariance checks:
//     – RandomRelabel(g, rng): fresh IDs by random permutation, shuffled
//     node/edge order, randomly flipped edge endpoints.
//     – Shuffled(g, rng): same IDs, shuffled node/edge order.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic at runtime; they return wrapped sentinels
//     (errors.Is(err, ErrTooFewVertices), …).
//   - Option constructors validate eagerly and panic on meaningless input
//     (WithLabels(), WithIDScheme(nil), WithRand(nil), negative labels).
//
// Label index convention:
//
//	Every node is created with a zero-based construction index; its label is
//	labelFn(index). Hubs ("Center" of Star/Wheel) have index 0 and rim or
//	leaf nodes 1..n-1, so WithLabels(3, 2, 2, 2, 2) on Star(5) yields a hub
//	labeled 3 with four leaves labeled 2.
package builder
