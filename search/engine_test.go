package search_test

import (
	"testing"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/label"
	"github.com/katalvlaran/rcspy/ref"
	"github.com/katalvlaran/rcspy/search"
)

func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(1, core.WithEndpoints("S", "T"))
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	arcs := []struct {
		tail, head string
		cost, res  float64
	}{
		{"S", "A", 1, 1},
		{"S", "B", 4, 1},
		{"A", "T", 4, 1},
		{"B", "T", 1, 1},
	}
	for _, a := range arcs {
		if _, err := g.AddArc(a.tail, a.head, a.cost, []float64{a.res}); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}

	return g
}

func runToCompletion(e *search.Engine) {
	for {
		if _, ok := e.Step(); !ok {
			return
		}
	}
}

func TestEngine_ForwardFindsBothPathsToSink(t *testing.T) {
	g := diamond(t)
	e, err := search.New(g, label.Forward, ref.Default{}, false, []float64{0}, []float64{100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Seed(label.NewForward("S", 1, false)); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	runToCompletion(e)

	frontier := e.Frontier("T")
	if len(frontier) == 0 {
		t.Fatalf("expected at least one non-dominated label at T")
	}
	best := frontier[0].Weight
	for _, l := range frontier {
		if l.Weight < best {
			best = l.Weight
		}
	}
	if best != 5 {
		t.Fatalf("best weight at T = %v, want 5 (S-A-T = 5, S-B-T = 5, tie)", best)
	}
}

func TestEngine_DominancePrunesWorsePath(t *testing.T) {
	g, err := core.NewGraph(1)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if _, err := g.AddArc("S", "A", 1, []float64{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddArc("S", "A", 5, []float64{5}); err != nil {
		t.Fatal(err)
	}
	e, err := search.New(g, label.Forward, ref.Default{}, false, []float64{0}, []float64{100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Seed(label.NewForward("S", 1, false)); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	runToCompletion(e)

	frontier := e.Frontier("A")
	if len(frontier) != 1 {
		t.Fatalf("expected the dominated (cost=5,res=5) label pruned, got %d labels", len(frontier))
	}
	if frontier[0].Weight != 1 {
		t.Fatalf("surviving label weight = %v, want 1", frontier[0].Weight)
	}
}

func TestEngine_ElementaryRejectsCycles(t *testing.T) {
	g, err := core.NewGraph(1, core.WithLoops())
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if _, err := g.AddArc("S", "A", 1, []float64{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddArc("A", "S", 1, []float64{1}); err != nil {
		t.Fatal(err)
	}
	e, err := search.New(g, label.Forward, ref.Default{}, true, []float64{0}, []float64{100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Seed(label.NewForward("S", 1, true)); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	runToCompletion(e)

	// S's frontier must contain only the seed: A->S is rejected as a revisit.
	if len(e.Frontier("S")) != 1 {
		t.Fatalf("expected S's frontier to stay at 1 label, got %d", len(e.Frontier("S")))
	}
}

func TestEngine_CutoffStopsExpansion(t *testing.T) {
	g := diamond(t)
	e, err := search.New(g, label.Forward, ref.Default{}, false, []float64{0}, []float64{100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.SetCutoff(0) // forward engine never expands past Res[0] >= 0, i.e. never expands
	if err := e.Seed(label.NewForward("S", 1, false)); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	runToCompletion(e)

	if len(e.Frontier("T")) != 0 {
		t.Fatalf("expected no labels to reach T once the root itself is past cutoff")
	}
}
