// SPDX-License-Identifier: MIT
// Package bidir implements the Bidirectional Coordinator: it drives a
// forward and a backward package search Engine toward each other across a
// shared, monotonically shrinking half-way cutoff, then joins their
// frontiers into a single Source->Sink label.
package bidir

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/label"
	"github.com/katalvlaran/rcspy/preprocess"
	"github.com/katalvlaran/rcspy/search"
)

// Solve runs the configured search (forward only, backward only, or both
// meeting in the middle) over g and returns the best Source->Sink label.
func Solve(g *core.Graph, cfg Config) (*label.Label, error) {
	if g == nil || g.Source() == "" || g.Sink() == "" {
		return nil, ErrInvalidInput
	}
	if len(cfg.MaxRes) != g.Resources() || len(cfg.MinRes) != g.Resources() {
		return nil, ErrInvalidInput
	}
	for i := range cfg.MinRes {
		if cfg.MinRes[i] > cfg.MaxRes[i] {
			return nil, ErrInvalidInput
		}
	}
	if cfg.REF == nil {
		return nil, ErrInvalidREF
	}

	if cfg.Preprocess {
		pruned, err := preprocess.Prepare(g, cfg.MaxRes[0])
		if errors.Is(err, preprocess.ErrUnreachable) {
			return nil, ErrInvalidInput
		}
		if err != nil {
			return nil, ErrNoFeasiblePath
		}
		g = pruned
	}

	switch cfg.Direction {
	case OnlyForward:
		return solveMono(g, cfg, label.Forward)
	case OnlyBackward:
		return solveMono(g, cfg, label.Backward)
	default:
		return solveBoth(g, cfg)
	}
}

// solveMono degenerates to a single directional search, returning the
// cheapest label at the opposite terminus (mirrored, for backward).
func solveMono(g *core.Graph, cfg Config, dir label.Direction) (*label.Label, error) {
	e, err := search.New(g, dir, cfg.REF, cfg.Elementary, cfg.MinRes, cfg.MaxRes)
	if err != nil {
		return nil, err
	}

	var root string
	var seedErr error
	if dir == label.Forward {
		root = g.Source()
		seedErr = e.Seed(label.NewForward(root, g.Resources(), cfg.Elementary))
	} else {
		root = g.Sink()
		seedErr = e.Seed(label.NewBackward(root, cfg.MaxRes, cfg.Elementary))
	}
	if seedErr != nil {
		return nil, ErrInvalidInput
	}

	deadline, hasDeadline := deadlineFor(cfg)
	for e.HasPending() {
		if hasDeadline && time.Now().After(deadline) {
			return nil, ErrTimeLimitExceeded
		}
		e.Step()
	}

	var terminus string
	if dir == label.Forward {
		terminus = g.Sink()
	} else {
		terminus = g.Source()
	}

	best := cheapest(e.Frontier(terminus))
	if best == nil {
		return nil, ErrNoFeasiblePath
	}
	if dir == label.Backward {
		best = mirrorBackward(best, cfg.MaxRes)
	}

	return best, nil
}

// solveBoth runs forward and backward searches toward a shrinking shared
// cutoff, then joins their frontiers.
func solveBoth(g *core.Graph, cfg Config) (*label.Label, error) {
	fwd, err := search.New(g, label.Forward, cfg.REF, cfg.Elementary, cfg.MinRes, cfg.MaxRes)
	if err != nil {
		return nil, err
	}
	bwd, err := search.New(g, label.Backward, cfg.REF, cfg.Elementary, cfg.MinRes, cfg.MaxRes)
	if err != nil {
		return nil, err
	}
	if err := fwd.Seed(label.NewForward(g.Source(), g.Resources(), cfg.Elementary)); err != nil {
		return nil, ErrInvalidInput
	}
	if err := bwd.Seed(label.NewBackward(g.Sink(), cfg.MaxRes, cfg.Elementary)); err != nil {
		return nil, ErrInvalidInput
	}

	hw := newHalfway(cfg.MaxRes[0], cfg.MinRes[0])
	rng := rngFor(cfg)
	deadline, hasDeadline := deadlineFor(cfg)

	for fwd.HasPending() || bwd.HasPending() {
		if hasDeadline && time.Now().After(deadline) {
			if best := joinFrontiers(g, fwd.AllFrontiers(), bwd.AllFrontiers(), cfg.REF, cfg.MinRes, cfg.MaxRes, cfg.Elementary, DefaultHalfwaySlack, false, 0); best != nil {
				return best, nil
			}

			return nil, ErrTimeLimitExceeded
		}
		if hw.Met() {
			break
		}

		var advanceForward bool
		switch {
		case fwd.HasPending() && !bwd.HasPending():
			advanceForward = true
		case !fwd.HasPending() && bwd.HasPending():
			advanceForward = false
		default:
			advanceForward = chooseSide(cfg, fwd, bwd, rng)
		}
		if advanceForward {
			if lbl, ok := fwd.Step(); ok {
				hw.AdvanceForward(lbl.Res[0])
			}
		} else {
			if lbl, ok := bwd.Step(); ok {
				hw.AdvanceBackward(lbl.Res[0])
			}
		}
		fwd.SetCutoff(hw.HF())
		bwd.SetCutoff(hw.HB())

		if cfg.HasThresh {
			if best := joinFrontiers(g, fwd.AllFrontiers(), bwd.AllFrontiers(), cfg.REF, cfg.MinRes, cfg.MaxRes, cfg.Elementary, DefaultHalfwaySlack, true, cfg.Threshold); best != nil {
				return best, nil
			}
		}
	}

	best := joinFrontiers(g, fwd.AllFrontiers(), bwd.AllFrontiers(), cfg.REF, cfg.MinRes, cfg.MaxRes, cfg.Elementary, DefaultHalfwaySlack, cfg.HasThresh, cfg.Threshold)
	if best != nil {
		return best, nil
	}

	// No merged candidate: fall back to either side's own terminal label,
	// covering the degenerate case where one direction reached the other's
	// terminus directly.
	if direct := cheapest(fwd.Frontier(g.Sink())); direct != nil {
		return direct, nil
	}
	if direct := cheapest(bwd.Frontier(g.Source())); direct != nil {
		return mirrorBackward(direct, cfg.MaxRes), nil
	}

	return nil, ErrNoFeasiblePath
}

// chooseSide picks true for forward, false for backward, per cfg.Method.
// Both engines are assumed to have pending work; callers handle the
// only-one-side-live case before calling this.
func chooseSide(cfg Config, fwd, bwd *search.Engine, rng *rand.Rand) bool {
	switch cfg.Method {
	case MethodProcessed:
		return fwd.Processed <= bwd.Processed
	case MethodUnprocessed:
		return fwd.Unprocessed <= bwd.Unprocessed
	case MethodRandom:
		return rng.Intn(2) == 0
	default: // MethodGenerated
		return fwd.Generated <= bwd.Generated
	}
}

func deadlineFor(cfg Config) (time.Time, bool) {
	if cfg.TimeLimit <= 0 {
		return time.Time{}, false
	}

	return time.Now().Add(cfg.TimeLimit), true
}

func cheapest(frontier []*label.Label) *label.Label {
	var best *label.Label
	for _, l := range frontier {
		if best == nil || l.Weight < best.Weight {
			best = l
		}
	}

	return best
}

// mirrorBackward re-expresses a backward-search label as though it had
// been produced by a forward search from Source: the path is reversed and
// resource 0 (which a backward label accumulates as "budget remaining") is
// mirrored about the upper bound to read as "budget consumed".
func mirrorBackward(l *label.Label, maxRes []float64) *label.Label {
	path := make([]string, len(l.Path))
	for i, v := range l.Path {
		path[len(l.Path)-1-i] = v
	}
	res := make([]float64, len(l.Res))
	copy(res, l.Res)
	res[0] = maxRes[0] - res[0]

	return &label.Label{Weight: l.Weight, Node: l.Node, Res: res, Path: path}
}
