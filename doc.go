// Package rcspy solves the Resource-Constrained Shortest Path Problem
// (RCSPP): find a minimum-cost Source->Sink path through a directed graph
// whose arcs each carry a cost and a vector of resource consumptions,
// subject to per-resource lower and upper bounds on the path's cumulative
// consumption.
//
// This file exists for module-level documentation only; the module has no
// root package of its own code, mirroring this repository's convention of
// keeping every concern in its own subpackage.
//
// 🚀 What is rcspy?
//
//	A bidirectional labeling solver built from four composable layers:
//
//	  • core/   — the directed, resource-labeled multigraph type
//	  • label/  — partial-path state: extension, dominance, merge
//	  • ref/    — pluggable Resource Extension Functions
//	  • bidir/  — the coordinator driving a forward and a backward search
//	              toward a shared, shrinking half-way cutoff and joining
//	              their frontiers into a Source->Sink answer
//
// Supporting packages provide fixture generation (builder/), a fast
// reachability pre-check (bfs/), a scalar-distance pre-check feeding
// pruning (dijkstra/, preprocess/).
//
// ✨ Why bidirectional?
//
//   - A single forward label-setting search explores a region that grows
//     with the resource bound; meeting in the middle roughly halves it.
//   - Dominance pruning at each vertex keeps only mutually incomparable
//     labels, so the frontier stays small even on dense graphs.
//   - The default Resource Extension Function is additive, but callers may
//     supply their own to model non-additive consumption.
//
// Quick example:
//
//	g, _ := core.NewGraph(2, core.WithEndpoints("Source", "Sink"))
//	g.AddArc("Source", "A", -1, []float64{1, 2})
//	g.AddArc("A", "Sink", -1, []float64{1, 2})
//	cfg := bidir.DefaultConfig([]float64{4, 20}, []float64{0, 0})
//	result, err := bidir.Solve(g, cfg)
//
// See SPEC_FULL.md for the full component design and DESIGN.md for the
// grounding behind each package's implementation choices.
package rcspy
