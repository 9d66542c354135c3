// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest resource-0
// distances on a simple triangle graph.
func ExampleDijkstra_triangle() {
	g, _ := core.NewGraph(1)
	_, _ = g.AddArc("A", "B", 0, []float64{1})
	_, _ = g.AddArc("B", "C", 0, []float64{2})
	_, _ = g.AddArc("A", "C", 0, []float64{5})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Src("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_returnPath demonstrates path reconstruction via
// WithReturnPath on a directed graph.
func ExampleDijkstra_returnPath() {
	g, _ := core.NewGraph(1)
	_, _ = g.AddArc("A", "B", 0, []float64{2})
	_, _ = g.AddArc("A", "C", 0, []float64{1})
	_, _ = g.AddArc("C", "B", 0, []float64{1})
	_, _ = g.AddArc("B", "D", 0, []float64{3})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Src("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[D]=%g, prev[D]=%s\n", dist["D"], prev["D"])
	// Output: dist[D]=5, prev[D]=B
}

// ExampleDijkstra_infThreshold demonstrates walling off arcs whose
// resource-0 consumption meets or exceeds a threshold.
func ExampleDijkstra_infThreshold() {
	g, _ := core.NewGraph(1)
	_, _ = g.AddArc("A", "B", 0, []float64{2})
	_, _ = g.AddArc("B", "C", 0, []float64{4})
	_, _ = g.AddArc("A", "C", 0, []float64{10})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Src("A"), dijkstra.WithInfThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[C]=%g\n", dist["C"])
	// Output: dist[C]=6
}
