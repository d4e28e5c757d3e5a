package prrsketch

import (
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/state"
)

// Sample draws a fresh PRR-sketch rooted at center, using sampler as
// the (already-refreshed) source of per-edge link states. priority
// resolves same-round state ties during the no-boost simulation.
func (s *Sketch) Sample(g *core.Graph, seeds core.SeedSet, priority state.Priority, sampler *linkstate.Sampler, center int) {
	s.reset(g.NodeCount())
	s.center = center

	limitDist := s.getLimitDist(g, sampler, seeds, center)
	s.buildReverseSubgraph(g, sampler, center, limitDist)
	s.simulateNoBoost(seeds, priority)

	s.centerState = s.nodes[center].state
}

// reset truncates every scratch slice touched by the previous sample
// back to length 0 (retaining capacity) and advances the epoch, so
// membership checks against stale data always fail.
func (s *Sketch) reset(n int) {
	if n > s.n {
		// Graph grew since this Sketch was allocated (e.g. a larger
		// fixture in tests); grow scratch storage to match.
		grown := make([]nodeRec, n)
		copy(grown, s.nodes)
		s.nodes = grown
		s.n = n
	}
	for _, v := range s.members {
		s.nodes[v].out = s.nodes[v].out[:0]
		s.nodes[v].in = s.nodes[v].in[:0]
	}
	s.members = s.members[:0]
	s.epoch++
}

// getLimitDist runs a reverse BFS from center over Active-only edges
// (Boosted edges count as blocked here: this measures how far a
// message could reach with no boosting at all) and returns the
// distance at which it first reaches any seed node. If no seed is
// reachable this way, it returns the graph's node count as a safe
// upper bound — the real sketch BFS below is never actually limited
// by an unreachable bound since it will simply exhaust the component.
func (s *Sketch) getLimitDist(g *core.Graph, sampler *linkstate.Sampler, seeds core.SeedSet, center int) int {
	s.ldEpoch++
	s.nodes[center].ldTouch = s.ldEpoch
	s.nodes[center].ldDist = 0
	if seeds.Contains(center) {
		return 0
	}

	queue := s.queue[:0]
	queue = append(queue, center)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDist := s.nodes[cur].ldDist
		for _, nb := range g.InNeighbors(cur) {
			from := nb.To
			if sampler.Get(nb.Edge) != state.Active {
				continue
			}
			if s.nodes[from].ldTouch == s.ldEpoch {
				continue
			}
			s.nodes[from].ldTouch = s.ldEpoch
			s.nodes[from].ldDist = curDist + 1
			if seeds.Contains(from) {
				s.queue = queue[:0]
				return curDist + 1
			}
			queue = append(queue, from)
		}
	}
	s.queue = queue[:0]
	return g.NodeCount()
}

// buildReverseSubgraph performs the real reverse BFS: every edge that
// is not Blocked (Active or Boosted) is kept, nodes are added up to
// limitDist hops from center, and the sketch's local adjacency
// (out[next] += {cur}, pointing toward the center) is assembled.
func (s *Sketch) buildReverseSubgraph(g *core.Graph, sampler *linkstate.Sampler, center, limitDist int) {
	s.addMember(center, 0)
	queue := s.queue[:0]
	queue = append(queue, center)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		nextDist := s.nodes[cur].dist + 1
		for _, nb := range g.InNeighbors(cur) {
			from := nb.To
			ls := sampler.Get(nb.Edge)
			if ls == state.Blocked {
				continue
			}
			if !s.Contains(from) {
				if nextDist > limitDist {
					continue
				}
				s.addMember(from, nextDist)
				if nextDist < limitDist {
					queue = append(queue, from)
				}
			}
			s.nodes[from].out = append(s.nodes[from].out, Edge{To: cur, State: ls})
			s.nodes[cur].in = append(s.nodes[cur].in, Edge{To: from, State: ls})
		}
	}
	s.queue = queue[:0]
}

// addMember marks v as part of the current sketch with the given
// distance from center, appending it to members.
func (s *Sketch) addMember(v, dist int) {
	s.nodes[v].touched = s.epoch
	s.nodes[v].dist = dist
	s.members = append(s.members, v)
}

// simulateNoBoost races Ca and Cr outward from the seeds over
// Active-only sketch edges with no boosting in effect, leaving every
// reached node's state as Ca or Cr (unreached nodes stay None). Ties
// at the same distance are broken by seeding the higher-priority
// message into the queue first; the strictly-unvisited check below
// then preserves first-writer-wins.
func (s *Sketch) simulateNoBoost(seeds core.SeedSet, priority state.Priority) {
	for _, v := range s.members {
		s.nodes[v].state = state.None
		s.nodes[v].dist = halfMax
	}

	queue := s.queue[:0]
	seedInto := func(ids []int, st state.NodeState) {
		for _, v := range ids {
			if !s.Contains(v) {
				continue
			}
			s.nodes[v].dist = 0
			s.nodes[v].state = st
			queue = append(queue, v)
		}
	}
	if priority.Compare(state.Ca, state.Cr) > 0 {
		seedInto(seeds.Sa, state.Ca)
		seedInto(seeds.Sr, state.Cr)
	} else {
		seedInto(seeds.Sr, state.Cr)
		seedInto(seeds.Sa, state.Ca)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDist := s.nodes[cur].dist
		curState := s.nodes[cur].state
		for _, e := range s.nodes[cur].out {
			if e.State != state.Active {
				continue
			}
			to := &s.nodes[e.To]
			if to.dist == halfMax {
				to.dist = curDist + 1
				to.state = curState
				queue = append(queue, e.To)
			}
		}
	}
	s.queue = queue[:0]
}
