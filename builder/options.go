// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithConstantLabel labels every node l. Panics if l < 0.
func WithConstantLabel(l int) BuilderOption {
	if l < 0 {
		panic(fmt.Sprintf("builder: WithConstantLabel(%d)", l))
	}
	return func(c *builderConfig) {
		c.labelFn = constantLabel(l)
	}
}

// WithLabels labels node idx with labels[idx]; indices past the end reuse
// the last value. Panics on an empty list or a negative label.
//
// Example: Path(5) with WithLabels(2, 1, 1, 1, 2).
func WithLabels(labels ...int) BuilderOption {
	if len(labels) == 0 {
		panic("builder: WithLabels()")
	}
	for i, l := range labels {
		if l < 0 {
			panic(fmt.Sprintf("builder: WithLabels: labels[%d]=%d", i, l))
		}
	}
	ls := append([]int(nil), labels...)
	return func(c *builderConfig) {
		c.labelFn = func(idx int) int {
			if idx < 0 {
				return ls[0]
			}
			if idx >= len(ls) {
				return ls[len(ls)-1]
			}
			return ls[idx]
		}
	}
}

// WithLabelFn sets an arbitrary index → label function. The function must
// be deterministic and return non-negative values; a negative value makes
// the constructor fail with core.ErrNegativeLabel. Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
