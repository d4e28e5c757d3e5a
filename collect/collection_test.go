package collect_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/collect"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/prrsketch"
	"github.com/katalvlaran/c2boost/state"
)

// starSketch samples a sketch over a star graph with the given spokes
// all pointing at center under edges that never fire (Active-only
// propagation leaves center at None), so every spoke is a harmless
// member whose centerStateTo can be stubbed in directly.
func starSketch(t *testing.T, n, center int, spokes []int, seedSa []int) *prrsketch.Sketch {
	t.Helper()
	b := core.NewBuilder(n)
	for _, v := range spokes {
		_, err := b.AddEdge(v, center, 0.0, 1.0) // Boosted-only: included, never Active-propagates
		require.NoError(t, err)
	}
	g := b.Build()
	seeds, err := core.NewSeedSet(n, seedSa, nil)
	require.NoError(t, err)

	sampler := linkstate.New(g, rand.New(rand.NewSource(1)))
	sampler.Refresh()
	sk := prrsketch.New(n)
	sk.Sample(g, seeds, state.UpperBoundPriority(), sampler, center)
	return sk
}

func TestCollectionSelect_PicksHighestGainNode(t *testing.T) {
	n := 4
	seeds, err := core.NewSeedSet(n, []int{0}, nil)
	require.NoError(t, err)
	priority := state.UpperBoundPriority()
	c := collect.NewCollection(n, seeds, priority, 0.5)

	sk := starSketch(t, n, 3, []int{1, 2}, []int{0})
	require.Equal(t, state.None, sk.CenterState())
	sk.SetCenterStateTo(1, state.CaPlus) // positive gain
	sk.SetCenterStateTo(2, state.Cr)     // negative gain, must be dropped
	c.Add(sk)

	selected, _ := c.Select(1)
	require.Equal(t, []int{1}, selected)
}

func TestCollectionSelect_NeverPicksSeeds(t *testing.T) {
	n := 2
	seeds, err := core.NewSeedSet(n, []int{0}, nil)
	require.NoError(t, err)
	priority := state.UpperBoundPriority()
	c := collect.NewCollection(n, seeds, priority, 0.5)

	sk := starSketch(t, n, 1, []int{0}, []int{0})
	require.Equal(t, state.None, sk.CenterState())
	sk.SetCenterStateTo(0, state.CaPlus) // positive gain, but 0 is a seed
	c.Add(sk)

	selected, gainTotal := c.Select(1)
	require.Empty(t, selected)
	require.Zero(t, gainTotal)
}

func TestCollectionSA_SelectAveragesByCenterCount(t *testing.T) {
	n := 3
	seeds, err := core.NewSeedSet(n, nil, []int{2})
	require.NoError(t, err)
	c := collect.NewCollectionSA(n, 0.0, seeds)

	// Center 0 sampled twice: node 1 contributes gain 1.0 total -> avg 0.5.
	c.Add(0, 2, []float64{0, 1.0, 0})
	// Center 1 sampled once: node 1 contributes gain 0.9 total -> avg 0.9.
	c.Add(1, 1, []float64{0, 0.9, 0})

	selected, gain := c.Select(1)
	require.Equal(t, []int{1}, selected)
	require.InDelta(t, 0.5+0.9, gain, 1e-9)
}

func TestCollectionSA_RandomSelectStaysWithinCandidatePool(t *testing.T) {
	n := 5
	seeds, err := core.NewSeedSet(n, []int{0}, nil)
	require.NoError(t, err)
	c := collect.NewCollectionSA(n, 0.0, seeds)
	c.Add(1, 1, []float64{0, 0, 5, 4, 3})

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		selected, _ := c.RandomSelect(2, rng)
		for _, v := range selected {
			require.NotEqual(t, 0, v, "must never select a seed")
		}
	}
}
