// SPDX-License-Identifier: MIT
// Package: rcspy/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits arcs in stable order i -> (i+1)%n for i=0..n-1.
//   - Cost/Res come from cfg.costFn/cfg.resFn.
//
// Complexity: O(n) vertices + O(n) arcs; O(1) extra space.
// Determinism: deterministic IDs, arc order, and Cost/Res given a fixed cfg.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rcspy/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple directed cycle C_n.
// Because core.Graph rejects tail==head arcs by default, the ring requires
// core.WithLoops() only when n==1 is attempted (rejected here regardless).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			cost := cfg.costFn(cfg.rng)
			res := cfg.resFn(cfg.rng, cfg.resources)
			if _, err := g.AddArc(uID, vID, cost, res); err != nil {
				return fmt.Errorf("%s: AddArc(%s->%s, cost=%g): %w", methodCycle, uID, vID, cost, err)
			}
		}

		return nil
	}
}
