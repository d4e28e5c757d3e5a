package ioformat_test

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/ioformat"
)

// TestReadGraph_RoundTripsNodeAndEdgeCounts generates random well-formed
// graph files and checks ReadGraph always recovers the same V/E the
// generator wrote, for any node count and any valid probability pair.
func TestReadGraph_RoundTripsNodeAndEdgeCounts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		nEdges := rapid.IntRange(0, 100).Draw(rt, "nEdges")

		var b strings.Builder
		fmt.Fprintf(&b, "%d %d\n", n, nEdges)
		for i := 0; i < nEdges; i++ {
			u := rapid.IntRange(0, n-1).Draw(rt, "u")
			v := rapid.IntRange(0, n-1).Draw(rt, "v")
			p := rapid.Float64Range(0, 1).Draw(rt, "p")
			pBoost := rapid.Float64Range(p, 1).Draw(rt, "pBoost")
			fmt.Fprintf(&b, "%d %d %g %g\n", u, v, p, pBoost)
		}

		g, err := ioformat.ReadGraph(strings.NewReader(b.String()))
		require.NoError(t, err)
		require.Equal(t, n, g.NodeCount())
		require.Equal(t, nEdges, g.EdgeCount())
	})
}
