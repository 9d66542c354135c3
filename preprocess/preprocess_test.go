package preprocess_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/preprocess"
)

func TestPrepare_DropsVerticesOverBudget(t *testing.T) {
	g, err := core.NewGraph(1, core.WithEndpoints("S", "T"))
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	// S -> T direct, cheap; S -> X -> T, expensive detour.
	must := func(_ string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}
	must(g.AddArc("S", "T", 1, []float64{1}))
	must(g.AddArc("S", "X", 1, []float64{50}))
	must(g.AddArc("X", "T", 1, []float64{50}))

	pruned, err := preprocess.Prepare(g, 5)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if pruned.HasVertex("X") {
		t.Fatalf("expected X to be pruned: its cheapest path uses 100 > budget 5")
	}
	if !pruned.HasVertex("S") || !pruned.HasVertex("T") {
		t.Fatalf("expected S and T to survive")
	}
}

func TestPrepare_UnreachableSink(t *testing.T) {
	g, err := core.NewGraph(1, core.WithEndpoints("S", "T"))
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddVertex("S"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertex("T"); err != nil {
		t.Fatal(err)
	}

	_, err = preprocess.Prepare(g, 100)
	if !errors.Is(err, preprocess.ErrUnreachable) {
		t.Fatalf("want ErrUnreachable, got %v", err)
	}
}

func TestPrepare_NilGraph(t *testing.T) {
	_, err := preprocess.Prepare(nil, 1)
	if !errors.Is(err, preprocess.ErrNilGraph) {
		t.Fatalf("want ErrNilGraph, got %v", err)
	}
}
