package collect_test

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/collect"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/state"
)

// TestCollection_ApproxBytesNeverNegative checks that a freshly built,
// empty Collection always reports a non-negative approximate footprint
// and names the graph size it was built with in its Dump, for any
// graph size.
func TestCollection_ApproxBytesNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		seeds, err := core.NewSeedSet(n, []int{0}, nil)
		require.NoError(t, err)
		priority := state.UpperBoundPriority()

		c := collect.NewCollection(n, seeds, priority, 0.5)
		require.GreaterOrEqual(t, c.ApproxBytes(), int64(0))
		require.Contains(t, c.Dump(), fmt.Sprintf("|V| = %d", n))
	})
}
