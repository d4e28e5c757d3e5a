package baseline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/baseline"
	"github.com/katalvlaran/c2boost/core"
)

// starGraph builds a hub (node 0) with spokes 1..n-1 all pointing in
// and out of it, so node 0 has the highest degree and PageRank.
func starGraph(t *testing.T, spokes int) *core.Graph {
	t.Helper()
	n := spokes + 1
	b := core.NewBuilder(n)
	for i := 1; i <= spokes; i++ {
		_, err := b.AddEdge(i, 0, 0.3, 0.6)
		require.NoError(t, err)
		_, err = b.AddEdge(0, i, 0.3, 0.6)
		require.NoError(t, err)
	}
	return b.Build()
}

func TestMaxDegree_PicksHub(t *testing.T) {
	g := starGraph(t, 4)
	seeds, err := core.NewSeedSet(5, nil, nil)
	require.NoError(t, err)

	top := baseline.MaxDegree(g, seeds, 1)
	require.Equal(t, []int{0}, top)
}

func TestMaxDegree_ExcludesSeeds(t *testing.T) {
	g := starGraph(t, 4)
	seeds, err := core.NewSeedSet(5, []int{0}, nil)
	require.NoError(t, err)

	top := baseline.MaxDegree(g, seeds, 1)
	require.NotContains(t, top, 0)
}

func TestPageRank_PicksHub(t *testing.T) {
	g := starGraph(t, 4)
	seeds, err := core.NewSeedSet(5, nil, nil)
	require.NoError(t, err)

	top := baseline.PageRank(g, seeds, 1, 0.85, 1e-8)
	require.Equal(t, []int{0}, top)
}
