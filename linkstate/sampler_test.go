package linkstate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/state"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(2)
	_, err := b.AddEdge(0, 1, 0.5, 0.9)
	require.NoError(t, err)
	return b.Build()
}

func TestSampler_CachesWithinEpoch(t *testing.T) {
	g := buildGraph(t)
	s := linkstate.New(g, rand.New(rand.NewSource(1)))

	first := s.Get(0)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, s.Get(0))
	}
}

func TestSampler_RefreshAllowsResample(t *testing.T) {
	g := buildGraph(t)
	s := linkstate.New(g, rand.New(rand.NewSource(1)))

	_ = s.Get(0)
	s.Refresh()
	// After refresh the cached value is no longer trusted; Get must not
	// panic and must return one of the three sampled states.
	got := s.Get(0)
	require.Contains(t, []state.LinkState{state.Active, state.Boosted, state.Blocked}, got)
}

func TestSampler_RespectsBounds(t *testing.T) {
	b := core.NewBuilder(2)
	_, _ = b.AddEdge(0, 1, 0.0, 0.0) // always Blocked
	g := b.Build()
	s := linkstate.New(g, rand.New(rand.NewSource(42)))
	require.Equal(t, state.Blocked, s.Get(0))
}
