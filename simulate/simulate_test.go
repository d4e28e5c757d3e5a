package simulate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/simulate"
	"github.com/katalvlaran/c2boost/state"
)

func TestOnce_BoostingUnlocksReach(t *testing.T) {
	b := core.NewBuilder(2)
	_, err := b.AddEdge(0, 1, 0.0, 1.0) // boosted-only
	require.NoError(t, err)
	g := b.Build()
	seeds, err := core.NewSeedSet(2, []int{0}, nil)
	require.NoError(t, err)
	priority := state.UpperBoundPriority()

	sampler := linkstate.New(g, rand.New(rand.NewSource(1)))
	sampler.Refresh()
	withoutBoost := simulate.Once(g, seeds, priority, sampler, nil, 0.5)
	require.Equal(t, float64(1), withoutBoost.NoneCount)

	sampler2 := linkstate.New(g, rand.New(rand.NewSource(1)))
	sampler2.Refresh()
	withBoost := simulate.Once(g, seeds, priority, sampler2, []int{0}, 0.5)
	require.Equal(t, float64(0), withBoost.NoneCount)
	require.Equal(t, float64(2), withBoost.CaPlusCount)
}

func TestMany_AveragesAcrossRuns(t *testing.T) {
	b := core.NewBuilder(2)
	_, err := b.AddEdge(0, 1, 0.5, 1.0)
	require.NoError(t, err)
	g := b.Build()
	seeds, err := core.NewSeedSet(2, []int{0}, nil)
	require.NoError(t, err)

	item := simulate.Many(g, seeds, state.UpperBoundPriority(), nil, 0.5, 200, 4, rand.New(rand.NewSource(5)))
	require.InDelta(t, 1.0, item.CaCount, 1e-9) // seed always ends Ca regardless of the other edge
}

func TestCompare_DiffIsNonNegativeWhenBoostHelps(t *testing.T) {
	b := core.NewBuilder(2)
	_, err := b.AddEdge(0, 1, 0.0, 1.0)
	require.NoError(t, err)
	g := b.Build()
	seeds, err := core.NewSeedSet(2, []int{0}, nil)
	require.NoError(t, err)

	cmp := simulate.Compare(g, seeds, state.UpperBoundPriority(), []int{0}, 0.5, 100, 2, rand.New(rand.NewSource(2)))
	require.GreaterOrEqual(t, cmp.Diff.TotalGain, 0.0)
}
