// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn    = DefaultIDFn          ("0","1","2",...)
//   • labelFn = constant DefaultLabel
//   • rng     = nil                  (pure/deterministic unless seeded)
//   • scope   = ""                   (set by Scoped, never by options)

package builder

import (
	"math/rand"
)

// LabelFn maps a node's construction index to its initial label (≥ 0).
type LabelFn func(idx int) int

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Initial label strategy: index -> label.
	labelFn LabelFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// ID prefix applied to every node this constructor creates.
	scope string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		labelFn: constantLabel(DefaultLabel),
		rng:     nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id returns the scoped node ID for construction index idx.
func (c builderConfig) id(idx int) string {
	return c.scope + c.idFn(idx)
}

// named returns the scoped form of a fixed node name such as "Center".
func (c builderConfig) named(name string) string {
	return c.scope + name
}

// label returns the initial label for construction index idx.
func (c builderConfig) label(idx int) int {
	return c.labelFn(idx)
}

func constantLabel(l int) LabelFn {
	return func(int) int { return l }
}
