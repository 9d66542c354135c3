// File: adjacency.go
// Role: Out/In adjacency bucket management shared by vertices.go and arcs.go.
// Concurrency: callers must already hold muArcAdj for write access; ensureAdjBuckets
// is always invoked under that lock.

package core

import "sort"

// ensureAdjBuckets makes sure vertex id has an (empty) entry in both the out
// and in adjacency indices, so later arc insertion never needs a presence
// check beyond the inner map.
func ensureAdjBuckets(g *Graph, id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[string]map[string]struct{})
	}
	if _, ok := g.in[id]; !ok {
		g.in[id] = make(map[string]map[string]struct{})
	}
}

// linkArc records arc a in both adjacency indices. Must hold muArcAdj.
func linkArc(g *Graph, a *Arc) {
	ensureAdjBuckets(g, a.Tail)
	ensureAdjBuckets(g, a.Head)
	if g.out[a.Tail][a.Head] == nil {
		g.out[a.Tail][a.Head] = make(map[string]struct{})
	}
	g.out[a.Tail][a.Head][a.ID] = struct{}{}
	if g.in[a.Head][a.Tail] == nil {
		g.in[a.Head][a.Tail] = make(map[string]struct{})
	}
	g.in[a.Head][a.Tail][a.ID] = struct{}{}
}

// unlinkArc removes arc a from both adjacency indices. Must hold muArcAdj.
func unlinkArc(g *Graph, a *Arc) {
	delete(g.out[a.Tail][a.Head], a.ID)
	if len(g.out[a.Tail][a.Head]) == 0 {
		delete(g.out[a.Tail], a.Head)
	}
	delete(g.in[a.Head][a.Tail], a.ID)
	if len(g.in[a.Head][a.Tail]) == 0 {
		delete(g.in[a.Head], a.Tail)
	}
}

// Out returns the arcs leaving vertex id, sorted by Arc.ID ascending.
// Complexity: O(deg+(v) log deg+(v)).
func (g *Graph) Out(id string) []*Arc {
	return g.collect(id, g.out)
}

// In returns the arcs entering vertex id, sorted by Arc.ID ascending.
// Complexity: O(deg-(v) log deg-(v)).
func (g *Graph) In(id string) []*Arc {
	return g.collect(id, g.in)
}

func (g *Graph) collect(id string, idx map[string]map[string]map[string]struct{}) []*Arc {
	g.muArcAdj.RLock()
	defer g.muArcAdj.RUnlock()

	var ids []string
	for _, bucket := range idx[id] {
		for arcID := range bucket {
			ids = append(ids, arcID)
		}
	}
	sort.Strings(ids)

	out := make([]*Arc, 0, len(ids))
	for _, arcID := range ids {
		out = append(out, g.arcs[arcID])
	}

	return out
}
