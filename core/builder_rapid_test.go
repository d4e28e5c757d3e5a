package core_test

import (
	"testing"

	"pgregory.net/rapid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/core"
)

// TestBuilder_InOutAdjacencyAgreeWithEdges checks, for arbitrary random
// edge sets, that every edge built shows up exactly once in its
// source's out-neighbors and its destination's in-neighbors, with the
// probabilities EdgeEndpoints/P/PBoost report matching what was added.
func TestBuilder_InOutAdjacencyAgreeWithEdges(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "n")
		nEdges := rapid.IntRange(0, 60).Draw(rt, "nEdges")

		b := core.NewBuilder(n, core.WithMultiEdges())
		type edge struct {
			from, to  int
			p, pBoost float64
		}
		var edges []edge
		for i := 0; i < nEdges; i++ {
			from := rapid.IntRange(0, n-1).Draw(rt, "from")
			to := rapid.IntRange(0, n-1).Draw(rt, "to")
			p := rapid.Float64Range(0, 1).Draw(rt, "p")
			pBoost := rapid.Float64Range(p, 1).Draw(rt, "pBoost")
			idx, err := b.AddEdge(from, to, p, pBoost)
			require.NoError(t, err)
			require.Equal(t, i, idx)
			edges = append(edges, edge{from, to, p, pBoost})
		}

		g := b.Build()
		require.Equal(t, n, g.NodeCount())
		require.Equal(t, nEdges, g.EdgeCount())

		for i, e := range edges {
			from, to := g.EdgeEndpoints(i)
			require.Equal(t, e.from, from)
			require.Equal(t, e.to, to)
			require.Equal(t, e.p, g.P(i))
			require.Equal(t, e.pBoost, g.PBoost(i))

			foundOut := false
			for _, nb := range g.OutNeighbors(e.from) {
				if nb.Edge == i {
					require.Equal(t, e.to, nb.To)
					foundOut = true
				}
			}
			require.True(t, foundOut, "edge %d missing from out-neighbors of %d", i, e.from)

			foundIn := false
			for _, nb := range g.InNeighbors(e.to) {
				if nb.Edge == i {
					require.Equal(t, e.from, nb.To)
					foundIn = true
				}
			}
			require.True(t, foundIn, "edge %d missing from in-neighbors of %d", i, e.to)
		}
	})
}
