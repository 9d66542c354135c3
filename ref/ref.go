// SPDX-License-Identifier: MIT
// Package ref defines the Resource Extension Function (REF) strategy used by
// package label and package search to move resource vectors across arcs, in
// forward mode, backward mode, and at a bidirectional join.
//
// A REF is a capability interface, not a callback union: implementations
// dispatch on method, not on argument shape. Default provides the additive
// forward / subtractive-on-resource-0 backward policy described by the
// labeling engine's default contract. Callers may supply their own REF to
// model non-additive consumption, provided it stays deterministic and
// resource-monotone along any extension; the search does not verify
// monotonicity, it only verifies each label remains resource-feasible.
package ref

import "github.com/katalvlaran/rcspy/core"

// REF updates a resource vector across an arc, in either traversal
// direction, and combines two half-paths at a bridging arc.
type REF interface {
	// Forward returns the resource vector after traversing arc from its
	// tail to its head, given the cumulative vector res observed so far.
	Forward(res []float64, arc *core.Arc) []float64

	// Backward returns the resource vector after traversing arc from its
	// head to its tail during a backward search, given the cumulative
	// vector res observed so far (res[0] starts at max_res[0] and decreases).
	Backward(res []float64, arc *core.Arc) []float64

	// Join combines a forward half's resource vector fwdRes with a backward
	// half's resource vector bwdRes across the bridging arc, producing the
	// full Source->Sink resource vector. maxRes supplies the upper bound
	// vector needed to mirror resource 0 about its cap.
	Join(fwdRes, bwdRes []float64, arc *core.Arc, maxRes []float64) []float64
}

// Default implements the additive forward / subtractive backward / mirrored
// join policy described as the labeling engine's default REF.
type Default struct{}

// Forward returns res[i] + arc.Res[i] for every resource i.
func (Default) Forward(res []float64, arc *core.Arc) []float64 {
	out := make([]float64, len(res))
	for i := range res {
		out[i] = res[i] + arc.Res[i]
	}

	return out
}

// Backward returns res[0] - arc.Res[0] for the monotone resource (which
// started at its upper bound and decreases as the backward search
// progresses toward Source), and res[i] + arc.Res[i] for every other
// resource (accumulating equivalently in either direction).
func (Default) Backward(res []float64, arc *core.Arc) []float64 {
	out := make([]float64, len(res))
	for i := range res {
		if i == 0 {
			out[i] = res[i] - arc.Res[i]
		} else {
			out[i] = res[i] + arc.Res[i]
		}
	}

	return out
}

// Join extends fwdRes across the bridging arc via Forward, then adds the
// backward half after mirroring resource 0 about its upper bound: the
// backward label's res[0] is how much of the cap remains unconsumed, so
// maxRes[0]-bwdRes[0] is how much the backward half actually consumed.
func (d Default) Join(fwdRes, bwdRes []float64, arc *core.Arc, maxRes []float64) []float64 {
	extended := d.Forward(fwdRes, arc)
	out := make([]float64, len(extended))
	for i := range extended {
		if i == 0 {
			out[i] = extended[i] + (maxRes[0] - bwdRes[0])
		} else {
			out[i] = extended[i] + bwdRes[i]
		}
	}

	return out
}
