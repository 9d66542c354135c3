// Package core provides the directed multigraph RCSPP arcs live on: Vertex,
// Arc, and a thread-safe Graph with both out- and in-adjacency indices so a
// solver can enumerate incident arcs in either orientation.
//
// Why a dedicated graph type instead of a generic one?
//
//   - Arcs always carry a scalar Cost and a resource vector Res of the
//     graph's declared arity (Graph.Resources()); there is no "unweighted"
//     mode to toggle.
//   - Backward search needs incoming arcs as cheaply as forward search needs
//     outgoing ones, so both directions are indexed from the start instead
//     of being derived by scanning the whole arc catalog.
//   - Source and Sink are first-class: WithEndpoints records them on the
//     graph itself so callers never pass them around separately from the
//     topology they describe.
//
// Configuration (GraphOption):
//
//	– WithEndpoints(source, sink string)
//	    Records the distinguished Source/Sink vertex IDs.
//
//	– WithLoops()
//	    Permits self-loop arcs (Tail == Head); otherwise AddArc(v,v,...) -> ErrLoopNotAllowed.
//
// Core methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	Vertices() []string
//	VertexCount() int
//
//	AddArc(tail, head string, cost float64, res []float64) (string, error)
//	RemoveArc(id string) error
//	HasArc(tail, head string) bool
//	GetArc(id string) (*Arc, error)
//	Arcs() []*Arc
//	ArcCount() int
//
//	Out(id string) []*Arc   // arcs leaving id
//	In(id string) []*Arc    // arcs entering id
//
//	CloneEmpty() *Graph                         // vertices + config, no arcs
//	InducedSubgraph(keep map[string]struct{}) *Graph
//	Reverse() *Graph                             // transposed graph, endpoints swapped
//
// Errors:
//
//	ErrEmptyVertexID     – zero-length vertex ID
//	ErrVertexNotFound    – missing vertex
//	ErrArcNotFound       – missing arc
//	ErrLoopNotAllowed    – self-loop when loops disabled
//	ErrResourceArity     – resource vector length != Graph.Resources()
//	ErrBadResourceCount  – NewGraph asked for fewer than one resource
package core
