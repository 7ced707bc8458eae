// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub-matching with bounded retries.
//   • Pairs stubs after a deterministic shuffle (per seed). A pairing with a
//     self-loop or a repeated pair is rejected before mutating the graph and
//     the stubs are reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; (n*d) must be even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Adds nodes via cfg.id in ascending index order (0..n-1).
//   • Either a valid realization is produced, or ErrConstructFailed.
//
// Complexity:
//   • Per attempt O(n·d) time and space for stubs; attempts are constant-bounded.
//
// Regular graphs are the classic blind spot of colour refinement: every node
// keeps the same colour at every step, so any two d-regular graphs of equal
// order are reported as candidates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

const minRandomRegularNodes = 1

// RandomRegular returns a Constructor that builds an undirected d-regular
// simple graph using stub-matching.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomRegularNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRandomRegularNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: d=%d not in [0,%d): %w", methodRandomRegular, d, n, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d=%d must be even: %w", methodRandomRegular, n*d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		pairs, ok := matchStubs(n, d, cfg)
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		ids, err := addNodes(g, cfg, methodRandomRegular, 0, n)
		if err != nil {
			return err
		}
		for _, pr := range pairs {
			if err = addEdge(g, methodRandomRegular, ids[pr[0]], ids[pr[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// matchStubs shuffles n·d stubs and pairs neighbours until it finds a pairing
// without loops or repeated pairs.
func matchStubs(n, d int, cfg builderConfig) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		pairs := make([][2]int, 0, len(stubs)/2)
		seen := make(map[[2]int]struct{}, len(stubs)/2)
		valid := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
		if valid {
			return pairs, true
		}
	}

	return nil, false
}
