// SPDX-License-Identifier: MIT
// Package preprocess provides static reachability pruning for a graph
// ahead of a resource-constrained search: vertices that cannot possibly
// lie on a feasible Source->Sink path are dropped before the labeling
// search ever sees them.
package preprocess

import (
	"errors"
	"math"

	"github.com/katalvlaran/rcspy/bfs"
	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/dijkstra"
)

// ErrUnreachable is returned when Source cannot reach Sink at all.
var ErrUnreachable = errors.New("preprocess: sink not reachable from source")

// ErrNilGraph is returned when Prepare is called with a nil graph.
var ErrNilGraph = errors.New("preprocess: graph is nil")

// Prepare returns a graph containing only the vertices that can appear on
// some Source->Sink path whose resource-0 cost does not exceed maxRes0: a
// vertex v survives iff the cheapest resource-0 distance from Source to v,
// plus the cheapest resource-0 distance from v to Sink, is within budget.
//
// Prepare treats Arc.Res[0] as the scalar weight for both distance
// computations (matching the bidirectional search's own treatment of
// resource 0 as the monotone, half-way-anchoring resource) and ignores
// every other resource: this is a necessary-condition prune, not a
// full feasibility check, so the returned graph may still contain
// vertices a full search later rejects.
func Prepare(g *core.Graph, maxRes0 float64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	reach, err := bfs.BFS(g, g.Source())
	if err != nil {
		return nil, err
	}
	if _, ok := reach.Depth[g.Sink()]; !ok {
		return nil, ErrUnreachable
	}

	fromSource, _, err := dijkstra.Dijkstra(g, dijkstra.Src(g.Source()))
	if err != nil {
		return nil, err
	}

	toSink, _, err := dijkstra.Dijkstra(g.Reverse(), dijkstra.Src(g.Sink()))
	if err != nil {
		return nil, err
	}

	keep := make(map[string]struct{}, len(fromSource))
	for v, df := range fromSource {
		dt, ok := toSink[v]
		if !ok {
			continue
		}
		if math.IsInf(df, 1) || math.IsInf(dt, 1) {
			continue
		}
		if df+dt <= maxRes0 {
			keep[v] = struct{}{}
		}
	}
	keep[g.Source()] = struct{}{}
	keep[g.Sink()] = struct{}{}

	return g.InducedSubgraph(keep), nil
}
