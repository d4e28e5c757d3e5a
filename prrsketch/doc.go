// Package prrsketch builds Potentially/Probabilistic Reverse-Reachable
// (PRR) sketches: given a graph, a competitive seed set, and a randomly
// chosen center node, a Sketch is the subgraph of nodes that could
// possibly influence the center's message state, together with the
// no-boost forward simulation result that seeds the gain analyzers in
// package gain.
//
// A Sketch is built in three passes:
//
//  1. getLimitDist — a reverse BFS over Active-only edges (Boosted
//     edges are treated as blocked in this pass, since it measures
//     reachability with no boosted nodes) that stops at the first seed
//     it reaches, bounding how far the real sketch needs to extend.
//  2. The reverse sketch BFS itself — a reverse BFS over Active-or-
//     Boosted edges, bounded by the limit distance, that assembles the
//     sketch's node set and its own local forward/reverse adjacency.
//  3. simulateNoBoost — a forward BFS over the sketch's Active-only
//     edges from every seed, racing Ca and Cr outward with no boosting
//     at all, to find the center's unboosted state.
//
// Sketch instances are meant to be reused: Sample resets internal
// scratch state in O(previous sketch size) via an epoch stamp, not
// O(|V|), so a worker goroutine can call Sample millions of times
// against the same *Sketch without reallocating.
package prrsketch
