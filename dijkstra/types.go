// Package dijkstra implements a single-source scalar shortest-path search
// over the monotone resource (index 0) of a core.Graph's arcs.
//
// It exists for one consumer: package preprocess uses it, once forward and
// once over core.Graph.Reverse(), to compute a lower bound on how much of
// resource 0 is unavoidably spent reaching (or returning from) every vertex,
// and prunes vertices that can never lie on a feasible Source->Sink path.
// It is not used by the label-setting search itself, which reasons about the
// full resource vector and cost, not a scalar projection of one resource.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(E)) to detect negative
//     resource-0 consumption and fail fast: Res[0] must be usable as a
//     Dijkstra edge weight, which requires non-negativity.
//   - We treat any arc with Res[0] >= InfThreshold as an impassable "wall".
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries once popped.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeResource indicates that a negative resource-0 consumption
	// was detected on some arc; resource-0 must be usable as an edge weight.
	ErrNegativeResource = errors.New("dijkstra: negative resource-0 consumption encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfThreshold must be positive")
)

// Options configures the behavior of Dijkstra.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Must be >= 0. Default math.Inf(1).
// InfThreshold     – treat arcs with Res[0] >= this threshold as impassable. Default math.Inf(1).
type Options struct {
	Source       string
	ReturnPath   bool
	MaxDistance  float64
	InfThreshold float64
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Src sets the Source field of Options to the given vertex ID.
func Src(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed this value are not explored. Panics on a negative
// value, mirroring other Option constructors in this module.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfThreshold defines a resource-0 threshold above which arcs are
// considered impassable. Panics on a non-positive value.
func WithInfThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfThreshold = threshold }
}

// DefaultOptions returns sane defaults for the given source vertex ID.
func DefaultOptions(source string) Options {
	return Options{
		Source:       source,
		ReturnPath:   false,
		MaxDistance:  math.Inf(1),
		InfThreshold: math.Inf(1),
	}
}
