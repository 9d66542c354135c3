// SPDX-License-Identifier: MIT
package bidir

import (
	"math"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/label"
	"github.com/katalvlaran/rcspy/ref"
)

// DefaultHalfwaySlack is the tolerance used by the half-way compatibility
// check in joinFrontiers: a candidate bridging pair is accepted when its
// computed phi falls in [0, DefaultHalfwaySlack]. The value is not derived
// from first principles; treat it as a tunable.
const DefaultHalfwaySlack = 2.0

// bridgeArc returns the cheapest arc tail->head in g, if any exists.
func bridgeArc(g *core.Graph, tail, head string) (*core.Arc, bool) {
	var best *core.Arc
	for _, a := range g.Out(tail) {
		if a.Head != head {
			continue
		}
		if best == nil || a.Cost < best.Cost {
			best = a
		}
	}

	return best, best != nil
}

// pathDisjoint reports whether f and b share no vertex at all, as required
// for an elementary-mode join: the bridging endpoints f.Node and b.Node each
// lie on only one of the two half-paths, so any shared vertex would repeat
// on the merged path.
func pathDisjoint(f, b *label.Label) bool {
	seen := make(map[string]struct{}, len(f.Path))
	for _, v := range f.Path {
		seen[v] = struct{}{}
	}
	for _, v := range b.Path {
		if _, ok := seen[v]; ok {
			return false
		}
	}

	return true
}

// halfwayCompatible reports whether a forward label f and backward label b
// satisfy the half-way compatibility condition within the given slack.
func halfwayCompatible(f, b *label.Label, maxRes0, slack float64) bool {
	phi := math.Abs(f.Res[0] - (maxRes0 - b.Res[0]))

	return phi >= 0 && phi <= slack
}

// joinFrontiers scans every (forward label, backward label) pair bridged
// by a graph arc and returns the lowest-weight feasible merged label, or
// nil if none exists. When hasThreshold is set, the scan exits early once a
// candidate at or below threshold is found.
func joinFrontiers(
	g *core.Graph,
	fwd, bwd map[string][]*label.Label,
	r ref.REF,
	minRes, maxRes []float64,
	elementary bool,
	slack float64,
	hasThreshold bool,
	threshold float64,
) *label.Label {
	var best *label.Label

	for fNode, fLabels := range fwd {
		for _, arc := range g.Out(fNode) {
			bLabels, ok := bwd[arc.Head]
			if !ok {
				continue
			}
			for _, f := range fLabels {
				for _, b := range bLabels {
					if elementary && !pathDisjoint(f, b) {
						continue
					}
					if !halfwayCompatible(f, b, maxRes[0], slack) {
						continue
					}

					merged := f.Merge(b, arc, r, maxRes)
					if !merged.Feasible(minRes, maxRes) {
						continue
					}
					if best == nil || merged.Weight < best.Weight {
						best = merged
					}
					if hasThreshold && best != nil && best.Weight <= threshold {
						return best
					}
				}
			}
		}
	}

	return best
}
