package baseline

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/c2boost/core"
)

// selectTopK picks the k highest-scoring non-seed nodes, breaking ties
// by node index for determinism. Mirrors naiveSolutionFramework's
// seed-exclusion and stable ordering.
func selectTopK(n, k int, seeds core.SeedSet, score func(v int) float64) []int {
	candidates := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !seeds.Contains(v) {
			candidates = append(candidates, v)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := score(candidates[i]), score(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i] < candidates[j]
	})
	if k > len(candidates) {
		k = len(candidates)
	}
	return candidates[:k]
}

// MaxDegree picks the k non-seed nodes with the largest total
// (in+out) degree.
func MaxDegree(g *core.Graph, seeds core.SeedSet, k int) []int {
	return selectTopK(g.NodeCount(), k, seeds, func(v int) float64 {
		return float64(len(g.OutNeighbors(v)) + len(g.InNeighbors(v)))
	})
}

// PageRank picks the k non-seed nodes with the largest PageRank score,
// computed over the graph's structure (edge weights taken as uniform,
// since PageRank here ranks structural influence rather than cascade
// probability).
func PageRank(g *core.Graph, seeds core.SeedSet, k int, damp, tol float64) []int {
	dg := simple.NewDirectedGraph()
	for v := 0; v < g.NodeCount(); v++ {
		dg.AddNode(simple.Node(int64(v)))
	}
	for v := 0; v < g.NodeCount(); v++ {
		for _, nb := range g.OutNeighbors(v) {
			if dg.HasEdgeFromTo(int64(v), int64(nb.To)) {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(int64(v)), simple.Node(int64(nb.To))))
		}
	}
	ranks := network.PageRank(dg, damp, tol)

	return selectTopK(g.NodeCount(), k, seeds, func(v int) float64 {
		return ranks[int64(v)]
	})
}
