// Package bfs provides a breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex -> distance (arcs) from start
//   - Parent: map from vertex -> its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted reachability in O(V + E) time.
//   - Used by package preprocess as a fast Source->Sink connectivity check
//     before the more expensive scalar-distance pruning in package dijkstra:
//     if Sink is unreachable from Source by any arc sequence at all, the
//     search can fail fast with InvalidInput instead of running a full
//     label-setting search.
//
// Determinism
//
//	Because core.Graph.Out returns arcs sorted by Arc.ID, and BFS enqueues
//	neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, "start")
//	if err != nil {
//	    // handle one of: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook errors
//	}
//
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip arcs for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook before a vertex is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting a vertex.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
