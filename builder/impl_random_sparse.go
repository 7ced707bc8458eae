// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p. No self-loops, no parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - Adds nodes via cfg.id in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Fixed trial order (i asc, j asc with j>i) ⇒ identical outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

const minRandomSparseNodes = 1

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addNodes(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// Always draw, so the stream position does not depend on p.
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
