package core

import "errors"

// Sentinel errors returned by Builder and Graph methods. Callers should
// use errors.Is against these rather than string-matching.
var (
	// ErrNodeOutOfRange is returned when a node index falls outside [0,N).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrBadProbability is returned when p or pBoost is outside [0,1],
	// or pBoost < p (boosting must never make a link less likely to fire).
	ErrBadProbability = errors.New("core: probability out of range")

	// ErrDuplicateEdge is returned by AddEdge when a parallel edge exists
	// and the builder was not constructed WithMultiEdges().
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEmptySeedSet is returned when a SeedSet's Sa and Sr are both empty.
	ErrEmptySeedSet = errors.New("core: seed set is empty")

	// ErrOverlappingSeeds is returned when a node appears in both Sa and Sr.
	ErrOverlappingSeeds = errors.New("core: node appears in both Sa and Sr")
)
