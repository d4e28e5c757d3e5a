package baseline

import (
	"math/rand"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/simulate"
	"github.com/katalvlaran/c2boost/state"
)

// Greedy repeatedly picks the non-seed, non-selected node that yields
// the largest marginal gain in Many's averaged total gain, one node at
// a time, until k nodes are chosen: no sketches, no lazy evaluation,
// every candidate is resimulated simTimes times at every round.
func Greedy(g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64, k, simTimes, nThreads int, rng *rand.Rand) []int {
	n := g.NodeCount()
	excluded := make([]bool, n)
	for _, a := range seeds.Sa {
		excluded[a] = true
	}
	for _, r := range seeds.Sr {
		excluded[r] = true
	}

	chosen := make([]int, 0, k)
	base := simulate.Many(g, seeds, priority, chosen, lambda, simTimes, nThreads, rng).TotalGain

	for round := 0; round < k; round++ {
		bestV := -1
		bestGain := 0.0
		bestScore := 0.0
		found := false
		for v := 0; v < n; v++ {
			if excluded[v] {
				continue
			}
			trial := append(append([]int(nil), chosen...), v)
			score := simulate.Many(g, seeds, priority, trial, lambda, simTimes, nThreads, rng).TotalGain
			gain := score - base
			if !found || gain > bestGain {
				found = true
				bestV = v
				bestGain = gain
				bestScore = score
			}
		}
		if !found {
			break
		}
		chosen = append(chosen, bestV)
		excluded[bestV] = true
		base = bestScore
	}
	return chosen
}
