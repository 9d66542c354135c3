package builder_test

import (
	"testing"

	"github.com/katalvlaran/rcspy/builder"
)

func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestIDFns exercises every IDFn implementation directly: correct output on
// valid indices, panic on indices each scheme rejects.
func TestIDFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          builder.IDFn
		idx         int
		want        string
		shouldPanic bool
	}{
		{"Default/zero", builder.DefaultIDFn, 0, "0", false},
		{"Default/multi", builder.DefaultIDFn, 123, "123", false},

		{"Symbol/min", builder.SymbolIDFn, 0, "A", false},
		{"Symbol/max", builder.SymbolIDFn, 25, "Z", false},
		{"Symbol/negative", builder.SymbolIDFn, -1, "", true},
		{"Symbol/tooHigh", builder.SymbolIDFn, 26, "", true},

		{"Alphanumeric/zero", builder.AlphanumericIDFn, 0, "0", false},
		{"Alphanumeric/low", builder.AlphanumericIDFn, 10, "a", false},
		{"Alphanumeric/high", builder.AlphanumericIDFn, 35, "z", false},
		{"Alphanumeric/negative", builder.AlphanumericIDFn, -5, "", true},

		{"ExcelColumn/zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumn/singleEnd", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumn/doubleStart", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumn/ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumn/AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumn/negative", builder.ExcelColumnIDFn, -1, "", true},

		{"Hex/zero", builder.HexIDFn, 0, "0", false},
		{"Hex/ten", builder.HexIDFn, 10, "a", false},
		{"Hex/negative", builder.HexIDFn, -2, "", true},

		{"SymbolNumber/zero", builder.SymbolNumberIDFn("v"), 0, "v0", false},
		{"SymbolNumber/multi", builder.SymbolNumberIDFn("res"), 7, "res7", false},
		{"SymbolNumber/negative", builder.SymbolNumberIDFn("v"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.idx) }, tc.name)

				return
			}
			if got := tc.fn(tc.idx); got != tc.want {
				t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

// TestWithIDSchemeOptions exercises every With*IDs BuilderOption through
// BuildGraph, confirming each installs the scheme its name promises.
func TestWithIDSchemeOptions(t *testing.T) {
	tests := []struct {
		name   string
		opt    builder.BuilderOption
		vertex string // the vertex id BuildGraph(3 vertices) must produce at index 1
	}{
		{"Default", builder.WithDefaultIDs(), "1"},
		{"Symbol", builder.WithSymbolIDs(), "B"},
		{"ExcelColumn", builder.WithExcelColumnIDs(), "B"},
		{"Hex", builder.WithHexIDs(), "1"},
		{"Alphanumeric", builder.WithAlphanumericIDs(), "1"},
		{"SymbNumb", builder.WithSymbNumb("r"), "r1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(1, nil, []builder.BuilderOption{tc.opt}, builder.Path(3))
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if !g.HasVertex(tc.vertex) {
				t.Fatalf("expected vertex %q from scheme %s", tc.vertex, tc.name)
			}
		})
	}
}
