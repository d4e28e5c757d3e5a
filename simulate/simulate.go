package simulate

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/state"
)

const infDist = int(^uint(0) >> 2)

// Once runs a single full forward propagation over g with boostedNodes
// applied directly (a boosted node's message is promoted to Ca+/Cr- the
// moment it first carries one), racing Ca and Cr outward from seeds and
// breaking same-round ties by priority, then tallies gain(state) for
// every node at lambda. sampler should already be Refresh()'d for a
// fresh draw.
func Once(g *core.Graph, seeds core.SeedSet, priority state.Priority, sampler *linkstate.Sampler, boostedNodes []int, lambda float64) Item {
	n := g.NodeCount()
	st := make([]state.NodeState, n)
	dist := make([]int, n)
	boosted := make([]bool, n)
	for i := range dist {
		dist[i] = infDist
	}
	for _, v := range boostedNodes {
		boosted[v] = true
	}

	queue := make([]int, 0, n)
	for _, a := range seeds.Sa {
		st[a] = state.Ca
		dist[a] = 0
		queue = append(queue, a)
	}
	for _, r := range seeds.Sr {
		st[r] = state.Cr
		dist[r] = 0
		queue = append(queue, r)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if boosted[cur] {
			switch st[cur] {
			case state.Ca:
				st[cur] = state.CaPlus
			case state.Cr:
				st[cur] = state.CrMinus
			}
		}
		curState := st[cur]
		for _, nb := range g.OutNeighbors(cur) {
			ls := sampler.Get(nb.Edge)
			if curState == state.CaPlus {
				if ls == state.Blocked {
					continue
				}
			} else if ls != state.Active {
				continue
			}

			to := nb.To
			if dist[cur]+1 < dist[to] {
				if dist[to] == infDist {
					queue = append(queue, to)
				}
				dist[to] = dist[cur] + 1
				st[to] = curState
			} else if dist[cur]+1 == dist[to] && priority.Compare(curState, st[to]) > 0 {
				st[to] = curState
			}
		}
	}

	var item Item
	for v := 0; v < n; v++ {
		item.add(st[v], lambda)
	}
	return item
}

// Many runs Once simTimes across nThreads worker goroutines (each with
// its own rand.Rand and linkstate.Sampler) and returns the average
// Item. Grounded on simulateBoosted's thread-pool averaging.
func Many(g *core.Graph, seeds core.SeedSet, priority state.Priority, boostedNodes []int, lambda float64, simTimes, nThreads int, rng *rand.Rand) Item {
	if simTimes <= 0 {
		return Item{}
	}
	if nThreads <= 0 {
		nThreads = 1
	}
	if nThreads > simTimes {
		nThreads = simTimes
	}

	totals := make([]Item, nThreads)
	var eg errgroup.Group
	for w := 0; w < nThreads; w++ {
		w := w
		first := simTimes * w / nThreads
		last := simTimes * (w + 1) / nThreads
		workerSeed := rng.Int63()
		eg.Go(func() error {
			workerRNG := rand.New(rand.NewSource(workerSeed))
			sampler := linkstate.New(g, workerRNG)
			var sum Item
			for i := first; i < last; i++ {
				sampler.Refresh()
				sum = sum.Plus(Once(g, seeds, priority, sampler, boostedNodes, lambda))
			}
			totals[w] = sum
			return nil
		})
	}
	_ = eg.Wait()

	var total Item
	for _, t := range totals {
		total = total.Plus(t)
	}
	return total.Scaled(simTimes)
}

// Compare runs Many with and without boostedNodes applied and returns
// both results alongside their difference.
func Compare(g *core.Graph, seeds core.SeedSet, priority state.Priority, boostedNodes []int, lambda float64, simTimes, nThreads int, rng *rand.Rand) Comparison {
	with := Many(g, seeds, priority, boostedNodes, lambda, simTimes, nThreads, rng)
	without := Many(g, seeds, priority, nil, lambda, simTimes, nThreads, rng)
	return Comparison{WithBoosted: with, WithoutBoosted: without, Diff: with.Minus(without)}
}
