// SPDX-License-Identifier: MIT
// Package search implements a single-directional labeling search: it grows
// Label values outward from a root vertex, pruning by resource feasibility
// and dominance, and exposes one label expansion at a time via Step so a
// caller (package bidir) can interleave a forward and a backward instance
// and enforce a shared dynamic cutoff between them.
package search

import (
	"container/heap"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/label"
	"github.com/katalvlaran/rcspy/ref"
)

// Engine runs one directional labeling search (either Forward, rooted at
// Source, or Backward, rooted at Sink) over a fixed graph.
//
// An Engine is single-goroutine: package bidir owns one Engine per
// direction and steps both from a single loop, passing each the shared
// cutoff value via SetCutoff.
type Engine struct {
	graph      *core.Graph
	dir        label.Direction
	ref        ref.REF
	elementary bool
	minRes     []float64
	maxRes     []float64

	best       map[string][]*label.Label     // non-dominated frontier per vertex
	dead       map[*label.Label]struct{}     // labels pruned out of a frontier after being queued
	childrenOf map[*label.Label][]*label.Label
	pending    labelHeap
	current    *label.Label

	cutoff    float64
	hasCutoff bool

	Generated   int
	Processed   int
	Unprocessed int
}

// New constructs an Engine for one direction over g. minRes and maxRes
// bound every label's resource vector; elementary enables cycle-free path
// enforcement in both Extend and Dominates.
func New(g *core.Graph, dir label.Direction, r ref.REF, elementary bool, minRes, maxRes []float64) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Engine{
		graph:      g,
		dir:        dir,
		ref:        r,
		elementary: elementary,
		minRes:     minRes,
		maxRes:     maxRes,
		best:       make(map[string][]*label.Label),
		dead:       make(map[*label.Label]struct{}),
		childrenOf: make(map[*label.Label][]*label.Label),
	}, nil
}

// Seed installs root as the initial frontier member at its own vertex and
// queues it for expansion. Returns ErrEmptyRoot or ErrRootNotFound if
// root's vertex is empty or absent from the graph.
func (e *Engine) Seed(root *label.Label) error {
	if root.Node == "" {
		return ErrEmptyRoot
	}
	if !e.graph.HasVertex(root.Node) {
		return ErrRootNotFound
	}

	e.best[root.Node] = append(e.best[root.Node], root)
	heap.Push(&e.pending, root)
	e.Generated++
	e.Unprocessed++

	return nil
}

// SetCutoff installs (or updates) the shared resource-0 boundary past
// which a label is no longer expanded. Forward engines stop expanding once
// a label's Res[0] reaches or exceeds cutoff; backward engines stop once
// their Res[0] reaches or falls below it.
func (e *Engine) SetCutoff(x float64) {
	e.cutoff = x
	e.hasCutoff = true
}

// HasPending reports whether this engine still has a queued label. The
// queue may hold only labels already pruned as dominated, in which case
// Step drains them and returns ok=false.
func (e *Engine) HasPending() bool {
	return e.pending.Len() > 0
}

// Frontier returns the current non-dominated label set at vertex, for
// package bidir to scan when attempting a join.
func (e *Engine) Frontier(vertex string) []*label.Label {
	return e.best[vertex]
}

// AllFrontiers returns every vertex with a non-empty frontier, for a full
// join sweep at search termination.
func (e *Engine) AllFrontiers() map[string][]*label.Label {
	return e.best
}

// Step expands the single highest-priority pending label: children of the
// most recently expanded label take priority, falling back to the globally
// cheapest pending label when none remain. It returns the label that was
// expanded, or ok=false once the pending queue is empty.
func (e *Engine) Step() (expanded *label.Label, ok bool) {
	next := e.selectNext()
	if next == nil {
		return nil, false
	}
	e.current = next
	e.Processed++
	e.Unprocessed--

	if e.pastCutoff(next) {
		return next, true
	}

	for _, arc := range e.neighbors(next.Node) {
		child, extended := next.Extend(arc, e.dir, e.ref, e.elementary)
		if !extended {
			continue
		}
		if !child.Feasible(e.minRes, e.maxRes) {
			continue
		}
		if e.absorb(child) {
			e.childrenOf[next] = append(e.childrenOf[next], child)
			heap.Push(&e.pending, child)
			e.Generated++
			e.Unprocessed++
		}
	}

	return next, true
}

// selectNext implements the priority rule: prefer an unexpanded child of
// the last-expanded label, else the globally cheapest alive pending label.
func (e *Engine) selectNext() *label.Label {
	kids := e.childrenOf[e.current]
	for len(kids) > 0 {
		cand := kids[0]
		kids = kids[1:]
		e.childrenOf[e.current] = kids
		if _, isDead := e.dead[cand]; !isDead {
			e.removeFromPending(cand)

			return cand
		}
	}

	for e.pending.Len() > 0 {
		cand := heap.Pop(&e.pending).(*label.Label)
		if _, isDead := e.dead[cand]; isDead {
			continue
		}

		return cand
	}

	return nil
}

// removeFromPending drops cand from the heap when it was selected via the
// children-of-current path rather than the heap pop path.
func (e *Engine) removeFromPending(cand *label.Label) {
	for i, l := range e.pending {
		if l == cand {
			heap.Remove(&e.pending, i)

			return
		}
	}
}

// absorb applies dominance pruning for child at its vertex's frontier: it
// returns false (discarding child) if an existing frontier member already
// dominates it, and otherwise inserts child, marking any frontier member
// child now dominates as dead.
func (e *Engine) absorb(child *label.Label) bool {
	frontier := e.best[child.Node]
	kept := frontier[:0]
	for _, existing := range frontier {
		dominates, ok := existing.Dominates(child, e.dir)
		if ok && dominates {
			return false
		}
		childDominates, ok := child.Dominates(existing, e.dir)
		if ok && childDominates {
			e.dead[existing] = struct{}{}

			continue
		}
		kept = append(kept, existing)
	}
	e.best[child.Node] = append(kept, child)

	return true
}

// pastCutoff reports whether next lies beyond the shared halfway boundary
// and should not be expanded further this round.
func (e *Engine) pastCutoff(l *label.Label) bool {
	if !e.hasCutoff {
		return false
	}
	if e.dir == label.Forward {
		return l.Res[0] >= e.cutoff
	}

	return l.Res[0] <= e.cutoff
}

func (e *Engine) neighbors(node string) []*core.Arc {
	if e.dir == label.Forward {
		return e.graph.Out(node)
	}

	return e.graph.In(node)
}

// labelHeap is a min-heap of *label.Label ordered by Weight ascending.
type labelHeap []*label.Label

func (h labelHeap) Len() int            { return len(h) }
func (h labelHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h labelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *labelHeap) Push(x interface{}) { *h = append(*h, x.(*label.Label)) }
func (h *labelHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
