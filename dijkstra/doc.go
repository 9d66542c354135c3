// Package dijkstra provides a scalar shortest-path search over a
// core.Graph's resource-0 values, used internally by package preprocess to
// bound how much of the monotone resource a Source->Sink path must spend
// reaching (or returning from) a given vertex.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:      Source string is empty.
//   - ErrNilGraph:         a nil *core.Graph was passed.
//   - ErrVertexNotFound:   the source vertex does not exist in the graph.
//   - ErrNegativeResource: some arc's Res[0] is negative (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance:   MaxDistance was set to a negative value (via panic).
//   - ErrBadInfThreshold:  InfThreshold was set to zero or negative (via panic).
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//
//	  - opts: Src(string) (required), WithReturnPath(), WithMaxDistance(float64), WithInfThreshold(float64).
//	  - dist: map[v] = minimal resource-0 distance from Source to v, or math.Inf(1) if unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path, nil if ReturnPath=false.
package dijkstra
