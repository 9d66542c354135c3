// SPDX-License-Identifier: MIT
package bidir

import (
	"math"
	"sync/atomic"
)

// halfway holds the shared (HF, HB) cutoff pair on resource 0. HF is the
// forward (upper) cutoff, HB the backward (lower) cutoff; both shrink
// monotonically toward each other as each directional search advances,
// until HF <= HB and neither side can extend further.
//
// Both fields are bit-packed float64 values behind atomic.Uint64 so that,
// in parallel scheduling, the forward worker may update HB and the
// backward worker may update HF without a mutex: each direction only ever
// writes its own field, and a reader tolerates observing the other field's
// slightly stale value. Solve itself drives both searches from a single
// goroutine.
type halfway struct {
	hf atomic.Uint64
	hb atomic.Uint64
}

func newHalfway(maxRes0, minRes0 float64) *halfway {
	h := &halfway{}
	h.hf.Store(math.Float64bits(maxRes0))
	h.hb.Store(math.Float64bits(minRes0))

	return h
}

func (h *halfway) HF() float64 { return math.Float64frombits(h.hf.Load()) }
func (h *halfway) HB() float64 { return math.Float64frombits(h.hb.Load()) }

// AdvanceForward implements HB <- max(HB, min(x, HF)) for a forward label
// whose resource-0 value is x, via a compare-and-swap retry loop.
func (h *halfway) AdvanceForward(x float64) {
	for {
		hf := h.HF()
		old := h.hb.Load()
		candidate := math.Min(x, hf)
		next := math.Max(math.Float64frombits(old), candidate)
		if next == math.Float64frombits(old) {
			return
		}
		if h.hb.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// AdvanceBackward implements HF <- min(HF, max(y, HB)) for a backward
// label whose resource-0 value is y.
func (h *halfway) AdvanceBackward(y float64) {
	for {
		hb := h.HB()
		old := h.hf.Load()
		candidate := math.Max(y, hb)
		next := math.Min(math.Float64frombits(old), candidate)
		if next == math.Float64frombits(old) {
			return
		}
		if h.hf.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// Met reports whether the two cutoffs have crossed, i.e. neither
// directional search can extend further and the join phase should start.
func (h *halfway) Met() bool {
	return h.HF() <= h.HB()
}
