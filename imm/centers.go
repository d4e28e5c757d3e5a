package imm

import "github.com/katalvlaran/c2boost/core"

// candidateCenters returns every non-seed node reachable from some seed
// within distLimit hops along out-edges, via a multi-source forward
// BFS; seeds themselves are not returned. distLimit >= n returns every
// node in the graph, seeds included. Grounded on getCenterList, used to
// cut down how many centers SA-IMM needs to sample when the seed set
// is small relative to the graph.
func candidateCenters(g *core.Graph, seeds core.SeedSet, distLimit int) []int {
	n := g.NodeCount()
	if distLimit >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	const unvisited = -1
	dist := make([]int, n)
	for i := range dist {
		dist[i] = unvisited
	}

	queue := make([]int, 0, n)
	seedInto := func(v int) {
		if dist[v] == unvisited {
			dist[v] = 0
			queue = append(queue, v)
		}
	}
	for _, v := range seeds.Sa {
		seedInto(v)
	}
	for _, v := range seeds.Sr {
		seedInto(v)
	}

	res := make([]int, 0, len(queue))
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, nb := range g.OutNeighbors(cur) {
			if dist[nb.To] != unvisited {
				continue
			}
			dist[nb.To] = dist[cur] + 1
			if dist[nb.To] <= distLimit {
				queue = append(queue, nb.To)
				res = append(res, nb.To)
			}
		}
	}
	return res
}
