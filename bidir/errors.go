package bidir

import "errors"

// ErrInvalidInput covers a malformed graph, bounds of the wrong arity, or a
// request with no possible Source->Sink path structurally. The last case is
// detected only when preprocessing is enabled; without it, an unreachable
// Sink ends in ErrNoFeasiblePath.
var ErrInvalidInput = errors.New("bidir: invalid input")

// ErrInvalidREF is returned when a caller-supplied REF is nil or otherwise
// unusable.
var ErrInvalidREF = errors.New("bidir: invalid REF")

// ErrNoFeasiblePath is returned when the search completes without any
// Source->Sink label satisfying the global resource bounds.
var ErrNoFeasiblePath = errors.New("bidir: no feasible path")

// ErrTimeLimitExceeded is returned when a configured time limit elapses
// before a feasible path was registered.
var ErrTimeLimitExceeded = errors.New("bidir: time limit exceeded")
