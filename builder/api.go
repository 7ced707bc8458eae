// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes through cfg.id / cfg.named and label them through cfg.label.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; no
// partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever the constructors return (ErrTooFewVertices, ErrNeedRandSource, …).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is a shorthand for BuildGraph with a single constructor.
func Build(con Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, con)
}

// Scoped returns a Constructor that runs con with every node ID prefixed by
// prefix, including fixed IDs such as "Center". Scopes nest: an inner prefix
// is appended to the outer one.
//
// Use it to assemble disjoint unions in one graph:
//
//	g, _ := BuildGraph(nil, Scoped("x:", Cycle(3)), Scoped("y:", Cycle(3)))
func Scoped(prefix string, con Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Scoped(%q): nil constructor: %w", prefix, ErrConstructFailed)
		}
		cfg.scope += prefix
		return con(g, cfg)
	}
}

// addNode inserts cfg.id(idx) labeled cfg.label(idx) and wraps failures with method context.
func addNode(g *core.Graph, cfg builderConfig, method string, idx int) (string, error) {
	id := cfg.id(idx)
	if err := addLabeled(g, method, id, cfg.label(idx)); err != nil {
		return "", err
	}
	return id, nil
}

// addLabeled inserts a node with an explicit ID and label.
func addLabeled(g *core.Graph, method, id string, label int) error {
	if err := g.AddNode(id, label); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}
	return nil
}

// addEdge inserts the undirected edge u-v and wraps failures with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}
	return nil
}

// Configured returns a Constructor that runs con with opts applied on top of
// the enclosing configuration. The active scope is kept.
//
//	BuildGraph(nil,
//	    Configured(Path(5), WithLabels(2, 1, 1, 1, 2)),
//	    Scoped("s:", Configured(Star(5), WithLabels(3, 2))),
//	)
func Configured(con Constructor, opts ...BuilderOption) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Configured: nil constructor: %w", ErrConstructFailed)
		}
		for _, opt := range opts {
			opt(&cfg)
		}
		return con(g, cfg)
	}
}
