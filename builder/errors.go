// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols, degree)
// is outside the allowed domain for the requested constructor.
// Typical origins: Cycle/Path/Grid/RandomRegular (n,d constraints).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or helper requires
// a non-nil *rand.Rand (WithSeed/WithRand, or the rng argument).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted strategies
// or attempts (e.g., stub-matching retries for RandomRegular), or was handed a
// nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates a topology name that ByKind does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")

// ErrUnknownIDScheme indicates a name that IDScheme does not know.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
