package state_test

import (
	"testing"

	"pgregory.net/rapid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/state"
)

// genPermutation draws a random permutation of {0,1,2,3} as a fixed-size
// array, used to build arbitrary valid Priority values.
func genPermutation(rt *rapid.T) [4]int {
	remaining := []int{0, 1, 2, 3}
	var perm [4]int
	for i := range perm {
		idx := rapid.IntRange(0, len(remaining)-1).Draw(rt, "idx")
		perm[i] = remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return perm
}

// TestNewPriority_RanksRoundTrip checks that for any permutation of
// ranks over {Ca+, Ca, Cr, Cr-}, NewPriority succeeds and Rank reports
// back exactly the value it was constructed with.
func TestNewPriority_RanksRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		perm := genPermutation(rt)
		p, err := state.NewPriority(perm[0], perm[1], perm[2], perm[3])
		require.NoError(t, err)
		require.Equal(t, perm[0], p.Rank(state.CaPlus))
		require.Equal(t, perm[1], p.Rank(state.Ca))
		require.Equal(t, perm[2], p.Rank(state.Cr))
		require.Equal(t, perm[3], p.Rank(state.CrMinus))
	})
}

// TestPriority_CompareConsistentWithRank checks Compare's sign always
// agrees with the underlying rank difference, for any two states drawn
// from any valid priority.
func TestPriority_CompareConsistentWithRank(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		perm := genPermutation(rt)
		p, err := state.NewPriority(perm[0], perm[1], perm[2], perm[3])
		require.NoError(t, err)

		states := []state.NodeState{state.CaPlus, state.Ca, state.Cr, state.CrMinus}
		a := states[rapid.IntRange(0, 3).Draw(rt, "a")]
		b := states[rapid.IntRange(0, 3).Draw(rt, "b")]

		cmp := p.Compare(a, b)
		want := p.Rank(a) - p.Rank(b)
		require.Equal(t, want, cmp)
	})
}
