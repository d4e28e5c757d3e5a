// Package core provides a dense, integer-indexed directed Graph for
// competitive-influence computations: node IDs are 0..N-1, and
// adjacency is stored as flat (neighbor, edge-index) slices rather
// than string-keyed maps, so the hot path (PRR-sketch sampling,
// millions of times per run) never touches a map or a mutex.
//
// G = (V,E) is always directed. Every edge carries two independent
// activation probabilities:
//
//   - p      — probability the edge is Active under ordinary cascade
//   - pBoost — probability the edge is Active when its source carries
//     a boosted message (always >= p)
//
// Construction is via Builder, which validates edge endpoints and
// probabilities and assembles the CSR-style adjacency once at Build()
// time — the Graph itself is immutable after construction, which is
// what lets workers share one *Graph across goroutines without
// locking (see package imm).
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same (from,to) pair.
//
// The node count is NewBuilder's own argument, not an option.
//
// Core Methods:
//
//	NodeCount() int                     // O(1)
//	EdgeCount() int                     // O(1)
//	OutNeighbors(u int) []Neighbor      // O(1), zero-copy slice
//	InNeighbors(u int) []Neighbor       // O(1), zero-copy slice
//	P(edge int) float64                 // O(1)
//	PBoost(edge int) float64            // O(1)
//
// Errors:
//
//	ErrNodeOutOfRange  – node index outside [0,N)
//	ErrBadProbability  – probability outside [0,1] or pBoost < p
//	ErrDuplicateEdge   – parallel edge when multi-edges disabled
//
// See SeedSet for the Sa/Sr seed-set type and Builder for graph
// assembly.
package core
