// File: view.go
// Role: Non-mutating graph views used by preprocessing: induced subgraphs and
// the transposed (reversed) graph.
// Determinism:
//   - Both views preserve vertex IDs; InducedSubgraph also preserves arc IDs,
//     while Reverse assigns fresh arc IDs. No reordering guarantees beyond
//     package rules.
// Concurrency:
//   - Read locks on the source graph only; the result is a fresh instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and arcs with both endpoints kept.

package core

// CloneEmpty returns a new Graph with the same configuration (resources,
// endpoints, loop policy) and vertices, but no arcs.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := []GraphOption{WithEndpoints(g.source, g.sink)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out, _ := NewGraph(g.resources, opts...) // g.resources >= 1 already, cannot fail

	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		ensureAdjBuckets(out, id)
	}

	return out
}

// InducedSubgraph returns a new Graph containing only the vertices in keep
// and the arcs whose Tail and Head are both in keep. Used by preprocessing
// to drop vertices that cannot lie on any resource-feasible Source->Sink path.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[string]struct{}) *Graph {
	out := g.CloneEmpty()

	out.muVert.Lock()
	for id := range out.vertices {
		if _, ok := keep[id]; !ok {
			delete(out.vertices, id)
		}
	}
	out.muVert.Unlock()

	for _, a := range g.Arcs() {
		_, tailKept := keep[a.Tail]
		_, headKept := keep[a.Head]
		if !tailKept || !headKept {
			continue
		}
		out.muArcAdj.Lock()
		na := &Arc{ID: a.ID, Tail: a.Tail, Head: a.Head, Cost: a.Cost, Res: a.Res}
		out.arcs[a.ID] = na
		linkArc(out, na)
		out.muArcAdj.Unlock()
	}

	return out
}

// Reverse returns a new Graph with every arc's Tail and Head swapped, and
// Source/Sink swapped to match. Cost and Res are copied unchanged; a
// direction-aware resource transform (see package ref) is applied by callers
// that need one, not by Reverse itself.
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	out := g.CloneEmpty()
	out.source, out.sink = g.sink, g.source

	for _, a := range g.Arcs() {
		_, _ = out.AddArc(a.Head, a.Tail, a.Cost, a.Res)
	}

	return out
}
