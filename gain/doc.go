// Package gain computes, for a built PRR-sketch, the marginal effect
// of boosting each candidate node alone on the center's final state —
// the quantity PR-IMM's and SA-IMM's greedy selection is built from.
//
// Fast implements an O(sketch size) analysis, valid only
// when the active state.Priority is monotone and submodular: it
// derives centerStateTo for every node directly from two single-pass
// BFS sweeps (one conditional on the center being Cr, one always) with
// no resimulation.
//
// Slow implements the general-case O(|boosted set| * sketch size)
// analysis: for every candidate node it actually boosts that node,
// re-propagates outward from it against the unboosted simulation
// result, reads off the center's state, and restores the sketch to
// its prior state. It makes no assumption
// about the priority and so works for any priority, monotone or not.
package gain
