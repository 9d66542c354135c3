// SPDX-License-Identifier: MIT
// Package: rcspy/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits arcs (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Cost/Res come from cfg.costFn/cfg.resFn.
//
// Complexity: O(n) vertices + O(n-1) arcs; O(1) extra space.
// Determinism: deterministic IDs, arc order, and Cost/Res given a fixed cfg.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rcspy/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		for i := 1; i < n; i++ {
			uID, vID := cfg.idFn(i-1), cfg.idFn(i)
			cost := cfg.costFn(cfg.rng)
			res := cfg.resFn(cfg.rng, cfg.resources)
			if _, err := g.AddArc(uID, vID, cost, res); err != nil {
				return fmt.Errorf("%s: AddArc(%s->%s, cost=%g): %w", methodPath, uID, vID, cost, err)
			}
		}

		return nil
	}
}
