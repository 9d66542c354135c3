package bidir

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/rcspy/ref"
)

// Direction restricts the Coordinator to one half of the search, or lets
// both run (the default).
type Direction int

const (
	// Both runs forward and backward searches and joins their frontiers.
	Both Direction = iota
	// OnlyForward runs only the forward search; its cheapest label at Sink
	// is the answer.
	OnlyForward
	// OnlyBackward runs only the backward search; its cheapest label at
	// Source, mirrored by mirrorBackward (coordinator.go), is the answer.
	OnlyBackward
)

// Method breaks ties when both directional searches have a live current
// label and the Coordinator must choose which to advance next.
type Method int

const (
	// MethodRandom picks uniformly, seeded by Config.Seed for reproducibility.
	MethodRandom Method = iota
	// MethodGenerated favors the side with fewer labels generated so far.
	MethodGenerated
	// MethodProcessed favors the side with fewer labels processed so far.
	MethodProcessed
	// MethodUnprocessed favors the side with fewer labels still pending.
	MethodUnprocessed
)

// Config collects every Coordinator knob. Use DefaultConfig plus Option
// values to build one, mirroring this module's functional-options
// convention elsewhere (core.GraphOption, dijkstra.Option).
type Config struct {
	MaxRes     []float64
	MinRes     []float64
	Direction  Direction
	Method     Method
	Elementary bool
	TimeLimit  time.Duration // zero means unbounded
	HasThresh  bool
	Threshold  float64
	Seed       int64
	Preprocess bool
	REF        ref.REF
}

// Option mutates a Config during construction.
type Option func(*Config)

// DefaultConfig returns a Config with REF set to the additive default,
// Direction=Both, Method=MethodGenerated, and no time limit or threshold,
// then applies opts in order, mirroring this module's other variadic
// constructors (core.NewGraph, dijkstra.Dijkstra).
func DefaultConfig(maxRes, minRes []float64, opts ...Option) Config {
	cfg := Config{
		MaxRes:    maxRes,
		MinRes:    minRes,
		Direction: Both,
		Method:    MethodGenerated,
		REF:       ref.Default{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirection restricts the search to one direction, or Both.
func WithDirection(d Direction) Option {
	return func(c *Config) { c.Direction = d }
}

// WithMethod selects the direction-selection tiebreak rule.
func WithMethod(m Method) Option {
	return func(c *Config) { c.Method = m }
}

// WithElementary enables cycle-free path enforcement.
func WithElementary(elementary bool) Option {
	return func(c *Config) { c.Elementary = elementary }
}

// WithTimeLimit caps wall-clock search time.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Config) { c.TimeLimit = d }
}

// WithThreshold enables early termination once a feasible path of weight
// <= threshold has been found.
func WithThreshold(threshold float64) Option {
	return func(c *Config) {
		c.HasThresh = true
		c.Threshold = threshold
	}
}

// WithSeed seeds the direction-selection RNG used by MethodRandom.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithPreprocess enables static reachability pruning before the search runs.
func WithPreprocess(enabled bool) Option {
	return func(c *Config) { c.Preprocess = enabled }
}

// WithREF overrides the default additive/subtractive Resource Extension
// Function. Panics if r is nil, matching this module's fast-fail-on-
// misuse convention for option constructors.
func WithREF(r ref.REF) Option {
	if r == nil {
		panic("bidir: WithREF requires a non-nil REF")
	}

	return func(c *Config) { c.REF = r }
}

// rngFor returns a *rand.Rand seeded from cfg.Seed, used by MethodRandom.
func rngFor(cfg Config) *rand.Rand {
	return rand.New(rand.NewSource(cfg.Seed))
}
