// Package state defines the node/link state model shared by every
// algorithm in this module: the five-valued NodeState a node can carry
// during a cascade, the three-valued LinkState an edge can be sampled
// into, and Priority — the total order over {Ca+, Ca, Cr, Cr-} that
// determines which message wins when two arrive at a node in the same
// round, and whether the resulting objective is monotone and/or
// submodular.
//
// Priority is an explicit, passed-around runtime value rather than a
// mutable global, constructed once via NewPriority or ParsePriority and
// shared read-only across goroutines.
package state
