package builder

import "errors"

// Sentinel errors returned by Constructor closures and BuildGraph.
// Callers should use errors.Is rather than string-matching.
var (
	ErrTooFewVertices     = errors.New("builder: parameter too small")
	ErrInvalidProbability = errors.New("builder: probability out of range")
	ErrNeedRandSource     = errors.New("builder: rng is required")
	ErrConstructFailed    = errors.New("builder: construction failed")
)
