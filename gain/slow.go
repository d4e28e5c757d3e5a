package gain

import (
	"github.com/katalvlaran/c2boost/prrsketch"
	"github.com/katalvlaran/c2boost/state"
)

// Slow computes centerStateTo for every node in sk without assuming
// anything about priority's monotonicity or submodularity: for each
// candidate it boosts that node alone, re-propagates outward from that
// node over the sketch (relaxing against the unboosted dist/state
// already stored), reads the center's resulting state, and restores
// the sketch before moving to the next candidate.
// O(|members| * sketch size edges).
func Slow(sk *prrsketch.Sketch, priority state.Priority) {
	members := sk.Members()
	oldState := make([]state.NodeState, len(members))
	oldDist := make([]int, len(members))
	for i, v := range members {
		oldState[i] = sk.State(v)
		oldDist[i] = sk.Dist(v)
	}
	restore := func() {
		for i, v := range members {
			sk.SetState(v, oldState[i])
			sk.SetDist(v, oldDist[i])
		}
	}

	centerNoBoost := sk.CenterState()
	for _, v := range members {
		if sk.State(v) == state.None {
			sk.SetCenterStateTo(v, centerNoBoost)
			continue
		}
		sk.SetCenterStateTo(v, slowOne(sk, priority, v))
		restore()
	}
}

// slowOne boosts v (Ca -> Ca+, Cr -> Cr-) and re-propagates outward
// from v over the sketch, returning the center's resulting state.
func slowOne(sk *prrsketch.Sketch, priority state.Priority, v int) state.NodeState {
	if sk.State(v) == state.Ca {
		sk.SetState(v, state.CaPlus)
	} else {
		sk.SetState(v, state.CrMinus)
	}

	visited := map[int]bool{v: true}
	queue := []int{v}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curState := sk.State(cur)
		nextDist := sk.Dist(cur) + 1

		for _, e := range sk.OutEdges(cur) {
			// A Ca+ carrier crosses both Active and Boosted links at
			// the boosted rate; every other state only crosses Active.
			if curState != state.CaPlus && e.State != state.Active {
				continue
			}
			toDist := sk.Dist(e.To)
			toState := sk.State(e.To)
			if nextDist < toDist || (nextDist == toDist && priority.Compare(curState, toState) > 0) {
				sk.SetDist(e.To, nextDist)
				sk.SetState(e.To, curState)
				if !visited[e.To] {
					visited[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
	}

	return sk.State(sk.Center())
}
