package search

import "errors"

// ErrEmptyRoot is returned when Seed is called with an empty root vertex ID.
var ErrEmptyRoot = errors.New("search: root vertex id is empty")

// ErrNilGraph is returned when New is called with a nil graph.
var ErrNilGraph = errors.New("search: graph is nil")

// ErrRootNotFound is returned when Seed's root vertex does not exist in
// the graph.
var ErrRootNotFound = errors.New("search: root vertex not found in graph")
