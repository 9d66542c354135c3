package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rcspy/builder"
	"github.com/katalvlaran/rcspy/core"
)

func TestBuildGraph_Path(t *testing.T) {
	g, err := builder.BuildGraph(2, nil, nil, builder.Path(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 4 || g.ArcCount() != 3 {
		t.Fatalf("got %d vertices, %d arcs; want 4, 3", g.VertexCount(), g.ArcCount())
	}
}

func TestBuildGraph_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(1, nil, nil, builder.Cycle(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.VertexCount() != 5 || g.ArcCount() != 5 {
		t.Fatalf("got %d vertices, %d arcs; want 5, 5", g.VertexCount(), g.ArcCount())
	}
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, nil, builder.Cycle(2))
	if !errors.Is(err, builder.ErrTooFewVertices) {
		t.Fatalf("want ErrTooFewVertices, got %v", err)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	bopts := []builder.BuilderOption{builder.WithSeed(7)}
	g1, err := builder.BuildGraph(1, nil, bopts, builder.RandomSparse(20, 0.3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g2, err := builder.BuildGraph(1, nil, bopts, builder.RandomSparse(20, 0.3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g1.ArcCount() != g2.ArcCount() {
		t.Fatalf("same seed produced different arc counts: %d vs %d", g1.ArcCount(), g2.ArcCount())
	}
}

func TestRandomSparse_NeedsRandSource(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, nil, builder.RandomSparse(5, 0.5))
	if !errors.Is(err, builder.ErrNeedRandSource) {
		t.Fatalf("want ErrNeedRandSource, got %v", err)
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, nil, builder.RandomSparse(5, 1.5))
	if !errors.Is(err, builder.ErrInvalidProbability) {
		t.Fatalf("want ErrInvalidProbability, got %v", err)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, nil, nil)
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("want ErrConstructFailed, got %v", err)
	}
}

func TestBuildGraph_CustomIDSchemeAndEndpoints(t *testing.T) {
	gopts := []core.GraphOption{core.WithEndpoints("v0", "v2")}
	bopts := []builder.BuilderOption{builder.WithIDScheme(builder.SymbolNumberIDFn("v"))}
	g, err := builder.BuildGraph(1, gopts, bopts, builder.Path(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Source() != "v0" || g.Sink() != "v2" {
		t.Fatalf("got source=%q sink=%q", g.Source(), g.Sink())
	}
	if !g.HasVertex("v0") || !g.HasVertex("v1") || !g.HasVertex("v2") {
		t.Fatalf("expected vertices v0,v1,v2")
	}
}
