// SPDX-License-Identifier: MIT
// Package: rcspy/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model: Erdos-Renyi-like generator over ordered pairs (i,j), i!=j,
// including each admissible arc independently with probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Cost/Res come from cfg.costFn/cfg.resFn.
//
// Complexity: O(n) vertices + O(n^2) Bernoulli trials.
// Determinism: stable trial order (i asc, j asc) for a fixed seed/options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rcspy/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like
// directed graph over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}

				include := false
				switch {
				case rng == nil:
					include = p == 1.0
				default:
					include = rng.Float64() <= p
				}
				if !include {
					continue
				}

				v := cfg.idFn(j)
				cost := cfg.costFn(rng)
				res := cfg.resFn(rng, cfg.resources)
				if _, err := g.AddArc(u, v, cost, res); err != nil {
					return fmt.Errorf("%s: AddArc(%s->%s, cost=%g): %w", methodRandomSparse, u, v, cost, err)
				}
			}
		}

		return nil
	}
}
