// SPDX-License-Identifier: MIT
// Package: rcspy/builder
//
// options.go - configuration and functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs; the
//     constructors they configure (Path, Cycle, RandomSparse, ...) never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// CostFn generates an arc's scalar Cost given an RNG (nil means deterministic).
type CostFn func(rng *rand.Rand) float64

// ResFn generates an arc's resource-consumption vector of the configured
// arity, given an RNG (nil means deterministic).
type ResFn func(rng *rand.Rand, resources int) []float64

// DefaultCostFn returns a constant cost of 1 regardless of rng.
func DefaultCostFn(_ *rand.Rand) float64 { return 1 }

// DefaultResFn returns a vector of all-1 consumption for every resource,
// modeling a unit traversal cost on every dimension.
func DefaultResFn(_ *rand.Rand, resources int) []float64 {
	res := make([]float64, resources)
	for i := range res {
		res[i] = 1
	}

	return res
}

// builderConfig holds the resolved parameters for graph constructors:
//   - resources: resource-vector arity, must match the target core.Graph.
//   - rng:       optional RNG; nil means deterministic output.
//   - idFn:      function mapping index -> vertex ID.
//   - costFn:    function generating each arc's Cost.
//   - resFn:     function generating each arc's Res vector.
//
// builderConfig is not safe for concurrent mutation; each BuildGraph call
// resolves its own config via newBuilderConfig.
type builderConfig struct {
	resources int
	rng       *rand.Rand
	idFn      IDFn
	costFn    CostFn
	resFn     ResFn
}

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig returns a builderConfig for the given resource arity,
// initialized with defaults, then applies each BuilderOption in order.
func newBuilderConfig(resources int, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		resources: resources,
		rng:       nil,
		idFn:      DefaultIDFn,
		costFn:    DefaultCostFn,
		resFn:     DefaultResFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-arc Cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) { c.costFn = fn }
}

// WithResFn overrides the per-arc Res generator. Panics on nil.
func WithResFn(fn ResFn) BuilderOption {
	if fn == nil {
		panic("builder: WithResFn(nil)")
	}

	return func(c *builderConfig) { c.resFn = fn }
}
