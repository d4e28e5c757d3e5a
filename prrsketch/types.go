package prrsketch

import "github.com/katalvlaran/c2boost/state"

const halfMax = int(^uint(0) >> 2) // a "sufficiently large" sentinel distance

// Edge is one adjacency entry inside a Sketch's local subgraph.
type Edge struct {
	To    int
	State state.LinkState
}

// nodeRec holds one node's scratch state. touched pins it to the epoch
// it was last written in; a node is "in the sketch" iff
// touched == the Sketch's current epoch.
type nodeRec struct {
	touched uint32

	state         state.NodeState
	centerStateTo state.NodeState
	dist          int // distance from center via the reverse sketch BFS
	distR         int // used by gain.Fast's Cr-center pass
	maxDistP      int // used by gain.Fast's Ca+ pass (Cr or None center)

	out []Edge
	in  []Edge

	ldTouch uint32 // getLimitDist's own visited stamp, independent of touched
	ldDist  int    // getLimitDist's own distance scratch
}

// Sketch is one reusable PRR-sketch. See the package doc for the
// construction algorithm. Not safe for concurrent use; one Sketch per
// worker goroutine.
type Sketch struct {
	n       int
	epoch   uint32
	ldEpoch uint32
	nodes   []nodeRec
	members []int
	queue   []int // reused BFS frontier, truncated not reallocated

	center      int
	centerState state.NodeState
}

// New allocates a Sketch able to hold any subset of an n-node graph.
func New(n int) *Sketch {
	return &Sketch{
		n:       n,
		nodes:   make([]nodeRec, n),
		epoch:   1,
		ldEpoch: 1,
	}
}

// Center returns the sketch's center node.
func (s *Sketch) Center() int { return s.center }

// CenterState returns the center's state after simulateNoBoost.
func (s *Sketch) CenterState() state.NodeState { return s.centerState }

// Members returns the node indices currently in the sketch. The
// returned slice is owned by the Sketch and only valid until the next
// Sample call.
func (s *Sketch) Members() []int { return s.members }

// Contains reports whether v is part of the current sketch.
func (s *Sketch) Contains(v int) bool { return s.nodes[v].touched == s.epoch }

// State returns v's state as left by simulateNoBoost. Calling this for
// a v not in the sketch is a programmer error (undefined result).
func (s *Sketch) State(v int) state.NodeState { return s.nodes[v].state }

// Dist returns v's distance from the center via the reverse sketch BFS.
func (s *Sketch) Dist(v int) int { return s.nodes[v].dist }

// SetState overwrites v's state. Used by gain.Slow to boost a
// candidate node and resimulate; restore the prior value afterward.
func (s *Sketch) SetState(v int, st state.NodeState) { s.nodes[v].state = st }

// SetDist overwrites v's distance. Used by gain.Slow alongside SetState.
func (s *Sketch) SetDist(v, d int) { s.nodes[v].dist = d }

// DistR returns gain.Fast's scratch distR field for v.
func (s *Sketch) DistR(v int) int { return s.nodes[v].distR }

// SetDistR sets gain.Fast's scratch distR field for v.
func (s *Sketch) SetDistR(v, d int) { s.nodes[v].distR = d }

// MaxDistP returns gain.Fast's scratch maxDistP field for v.
func (s *Sketch) MaxDistP(v int) int { return s.nodes[v].maxDistP }

// SetMaxDistP sets gain.Fast's scratch maxDistP field for v.
func (s *Sketch) SetMaxDistP(v, d int) { s.nodes[v].maxDistP = d }

// CenterStateTo returns the state the center would take on if v alone
// were boosted, as computed by a gain analyzer.
func (s *Sketch) CenterStateTo(v int) state.NodeState { return s.nodes[v].centerStateTo }

// SetCenterStateTo records the center's state under boosting v alone.
func (s *Sketch) SetCenterStateTo(v int, st state.NodeState) { s.nodes[v].centerStateTo = st }

// OutEdges returns v's out-edges within the sketch (v -> to, as
// discovered by the reverse BFS: these point toward the center). The
// returned slice is owned by the Sketch and must not be mutated or
// retained past the next Sample call.
func (s *Sketch) OutEdges(v int) []Edge { return s.nodes[v].out }

// InEdges returns v's in-edges within the sketch, under the same
// ownership rules as OutEdges.
func (s *Sketch) InEdges(v int) []Edge { return s.nodes[v].in }
