package baseline_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/baseline"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/state"
)

func TestGreedy_ExcludesSeedsAndKeepsFirstOnTie(t *testing.T) {
	// node0 (seed Sa) -> node1 boosted-only edge; node2 is isolated.
	// Seeds are not candidates, and boosting node1 or node2 changes
	// nothing: a plain Ca cannot cross the boosted-only edge, so node1
	// never carries a message to promote. Both gains are 0 and Greedy
	// keeps the first candidate it scored, so k=1 picks node1.
	b := core.NewBuilder(3)
	_, err := b.AddEdge(0, 1, 0.0, 1.0)
	require.NoError(t, err)
	g := b.Build()
	seeds, err := core.NewSeedSet(3, []int{0}, nil)
	require.NoError(t, err)

	chosen := baseline.Greedy(g, seeds, state.UpperBoundPriority(), 0.5, 1, 50, 2, rand.New(rand.NewSource(7)))
	require.Equal(t, []int{1}, chosen)
}
