// Package wlrefine is a playground for Weisfeiler-Lehman (1-WL) color
// refinement: run it on two graphs at once and watch, iteration by
// iteration, whether their color histograms still agree.
//
// What is inside
//
//	core/     - labeled undirected multigraph and its dense read-only Index
//	wl/       - the refinement engine: Refine, Step, Classes, StabilizedAt
//	builder/  - deterministic topology constructors (cycle, path, star, ...)
//	bfs/      - breadth-first traversal and connected components
//	dfs/      - depth-first traversal, cycle witnesses and forest checks
//	scenario/ - YAML scenario documents and the built-in catalog
//	report/   - tables (text, Markdown) and JSON/YAML output
//	metrics/  - Prometheus instruments for refinement runs
//	logging/  - slog setup shared by the command line tools
//	cmd/wlrefine - the command line front end
//
// A step-k label is a fresh id for the pair (own label, sorted multiset of
// neighbor labels). Equal histograms at every step make the pair an
// isomorphism candidate; a single mismatch proves non-isomorphism.
//
// Quick example:
//
//	    A───B         X───Y
//	    │   │   vs    │ ╲ │
//	    C───D         Z   W
//
// The square is 2-regular; the right graph is not, so the step-1
// histograms already differ.
//
//	go install github.com/katalvlaran/wlrefine/cmd/wlrefine@latest
package wlrefine
