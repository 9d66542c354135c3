// Package builder provides deterministic fixture generators for core.Graph,
// used by tests across this module to build small, reproducible
// resource-labeled graphs without hand-writing AddArc calls.
//
// The package offers:
//
//   - Configuration primitives:
//     - BuilderOption:  a function that mutates builderConfig before use.
//     - builderConfig:  holds RNG, ID scheme, Cost/Res generators.
//   - Vertex-ID schemes (IDFn implementations):
//     - DefaultIDFn:       decimal strings ("0","1",...).
//     - SymbolIDFn:        single letters ("A","B",...).
//     - ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",...).
//     - AlphanumericIDFn:  base-36 strings ("0".."z","10",...).
//     - HexIDFn:           lowercase hexadecimal ("0","a","ff",...).
//     - SymbolNumberIDFn:  prefix + decimal index ("v0","v1",...).
//   - Topology factories: Path, Cycle, RandomSparse.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors themselves never panic; they return sentinel errors.
//   - Deterministic output for a fixed seed and call order.
package builder
