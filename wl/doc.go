// Package wl computes the Weisfeiler-Lehman (WL-1) color-refinement sequence
// for a pair of labeled undirected graphs.
//
// What
//
//   - Refine(a, b, maxK) returns exactly maxK+1 Step records, k = 0..maxK.
//   - Each Step holds, for both graphs, the label of every node, the label
//     histogram, the sorted union of labels in use, the signature→label
//     dictionary minted at that step, and an isomorphism-candidate verdict.
//   - Partition helpers (Classes, SamePartition, StabilizedAt, Verdict) read
//     a finished sequence without re-running the engine.
//
// Labeling scheme
//
//	Labels (LabelID) are decimal strings minted from a counter that lives for
//	a single Refine call. A LabelID is never reused: every step mints fresh
//	ids, so comparing raw ids across steps says nothing about whether a class
//	survived. Compare partitions (SamePartition) instead.
//
//	Step 0: the distinct initial labels of BOTH graphs are sorted ascending
//	and each gets a fresh id in that order, so equal raw labels share an id
//	regardless of which graph they come from.
//
//	Step k ≥ 1: every node's signature is
//
//	    (self,[n1,n2,...])
//
//	built from the previous step's labels, with neighbor labels sorted by
//	their NUMERIC value. All signatures of both graphs are pooled, the
//	distinct ones sorted LEXICOGRAPHICALLY (byte order) and each gets a fresh
//	id in that order. The two orderings are distinct on purpose: "10" sorts
//	before "9" as a string but after it as a number.
//
// Isomorphism candidate
//
//	IsIsomorphicCandidate is true iff both histograms have the same keys with
//	the same counts. This is NECESSARY for isomorphism and never SUFFICIENT.
//	Regular graphs with identical local structure around every node are not
//	told apart: a single 6-cycle and two disjoint 3-cycles (all labels equal)
//	report true at every k although they are not isomorphic.
//
// Horizon
//
//	The engine always performs exactly maxK refinement rounds, even once the
//	partition is stable. Use StabilizedAt to find where refinement stopped
//	changing anything.
//
// Determinism
//
//	The output is a pure function of the node and edge SETS and node IDs.
//	Node and edge slice order never affects any LabelID.
//
// Complexity (V = |V_A|+|V_B|, E = |E_A|+|E_B|, U = distinct signatures per step)
//
//   - Time:   O(maxK · (V + E·log d) + maxK · U·log U)
//   - Memory: O(maxK · V) for the returned steps.
//
// Errors
//
//   - ErrInvalidHorizon         if maxK < 0.
//   - ErrInvalidGraphReference  if a graph is nil, malformed, or has an edge
//     endpoint that is not one of its nodes (wraps the core sentinel).
//
// Usage
//
//	steps, err := wl.Refine(a, b, 3,
//	    wl.WithOnStep(func(s wl.Step) { log.Println(s.K, s.IsIsomorphicCandidate) }),
//	)
//	if err != nil {
//	    // errors.Is(err, wl.ErrInvalidGraphReference) / wl.ErrInvalidHorizon
//	}
//	label := steps[2].LabelsA["v0"]
package wl
