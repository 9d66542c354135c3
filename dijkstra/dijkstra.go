package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/rcspy/core"
)

// Dijkstra computes shortest resource-0 distances from Options.Source to all
// other vertices reachable in g, treating each arc's Res[0] as its weight.
// It accepts functional options to customize behavior (WithReturnPath,
// WithMaxDistance, WithInfThreshold, etc.).
//
// Returns:
//
//   - dist: map from vertex ID to minimum resource-0 distance (math.Inf(1) if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//   - err:  error if inputs are invalid or a negative resource-0 value is found.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// Pre-scan all arcs to detect negative resource-0 values. Fail fast.
	for _, a := range g.Arcs() {
		if a.Res[0] < 0 {
			return nil, nil, fmt.Errorf("%w: arc %s->%s res[0]=%g", ErrNegativeResource, a.Tail, a.Head, a.Res[0])
		}
	}

	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	visited := make(map[string]bool, len(vertices))

	for _, v := range vertices {
		dist[v] = math.Inf(1)
		visited[v] = false
		if prev != nil {
			prev[v] = ""
		}
	}
	dist[cfg.Source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: cfg.Source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		for _, a := range g.Out(u) {
			w := a.Res[0]
			if w >= cfg.InfThreshold {
				continue
			}
			newDist := dist[u] + w
			if newDist > cfg.MaxDistance {
				continue
			}
			if newDist >= dist[a.Head] {
				continue
			}
			dist[a.Head] = newDist
			if prev != nil {
				prev[a.Head] = u
			}
			heap.Push(&pq, &nodeItem{id: a.Head, dist: newDist})
		}
	}

	return dist, prev, nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// "lazy-decrease-key" pattern: stale entries are skipped on pop via visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
