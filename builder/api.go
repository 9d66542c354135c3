// SPDX-License-Identifier: MIT
// Package: rcspy/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(resources, gopts, bopts, cons...). Creates
//     g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rcspy/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors (no panics), and preserve determinism for the same config
// and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with the given resource arity and
// graph options, resolves the builder configuration from bopts, and applies
// all constructors in order. Any constructor error is wrapped with the
// context "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted by design.
func BuildGraph(resources int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(resources, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(resources, bopts...)

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

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Path builds a simple directed path P_n (n >= 2).
// Complexity: O(n) vertices + O(n-1) arcs.
//func Path(n int) Constructor

// Cycle builds an n-vertex simple directed cycle C_n (n >= 3).
// Complexity: O(n) vertices + O(n) arcs.
//func Cycle(n int) Constructor

// RandomSparse builds an Erdos-Renyi-like directed sparse graph.
// Requires cfg.rng != nil when 0 < p < 1.
// Complexity: O(n^2) ordered-pair Bernoulli trials.
//func RandomSparse(n int, p float64) Constructor
