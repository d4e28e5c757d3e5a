package linkstate

import (
	"math/rand"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/state"
)

// Sampler is a per-worker link-state cache over one Graph. It is NOT
// safe for concurrent use — package imm gives each worker goroutine
// its own Sampler sharing the same read-only *core.Graph.
type Sampler struct {
	g      *core.Graph
	rng    *rand.Rand
	states []state.LinkState
	epoch  []uint32
	cur    uint32
}

// New creates a Sampler over g using rng as its randomness source.
func New(g *core.Graph, rng *rand.Rand) *Sampler {
	n := g.EdgeCount()
	return &Sampler{
		g:      g,
		rng:    rng,
		states: make([]state.LinkState, n),
		epoch:  make([]uint32, n),
		cur:    1,
	}
}

// Get returns the LinkState of the given edge, sampling it from
// (p, pBoost) on first access this epoch:
//
//	[0, p)       -> Active
//	[p, pBoost)  -> Boosted
//	[pBoost, 1)  -> Blocked
func (s *Sampler) Get(edge int) state.LinkState {
	if s.epoch[edge] == s.cur {
		return s.states[edge]
	}
	r := s.rng.Float64()
	p, pBoost := s.g.P(edge), s.g.PBoost(edge)
	var ls state.LinkState
	switch {
	case r < p:
		ls = state.Active
	case r < pBoost:
		ls = state.Boosted
	default:
		ls = state.Blocked
	}
	s.states[edge] = ls
	s.epoch[edge] = s.cur
	return ls
}

// Refresh invalidates every edge's cached draw in O(1), ready for the
// next PRR-sketch sample to lazily re-sample as it visits edges.
func (s *Sampler) Refresh() {
	s.cur++
}
