package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/state"
)

func TestNewPriority_RejectsNonPermutation(t *testing.T) {
	_, err := state.NewPriority(3, 3, 1, 2)
	require.ErrorIs(t, err, state.ErrNotAPermutation)
}

func TestUpperBoundPriority_IsMonotoneAndSubmodular(t *testing.T) {
	p := state.UpperBoundPriority()
	require.True(t, p.Monotonic())
	require.True(t, p.Submodular())
}

func TestParsePriority_MatchesNewPriority(t *testing.T) {
	byTokens, err := state.ParsePriority("Ca+ > Cr- > Cr > Ca")
	require.NoError(t, err)
	byValues, err := state.NewPriority(3, 0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, byValues, byTokens)
}

func TestParsePriority_RejectsRepeatedToken(t *testing.T) {
	_, err := state.ParsePriority("Ca+ Ca+ Ca Cr")
	require.ErrorIs(t, err, state.ErrRepeatedToken)
}

func TestParsePriority_RejectsTooFewTokens(t *testing.T) {
	_, err := state.ParsePriority("Ca+ Ca Cr")
	require.ErrorIs(t, err, state.ErrTooFewTokens)
}

func TestClassify_NonMonotonicPattern(t *testing.T) {
	// Ca > Cr > Ca+ : canonical non-monotonic pattern (1)
	p, err := state.NewPriority(0 /*Ca+*/, 3 /*Ca*/, 2 /*Cr*/, 1 /*Cr-*/)
	require.NoError(t, err)
	require.False(t, p.Monotonic())
}

func TestSatisfies(t *testing.T) {
	p := state.UpperBoundPriority()
	ok, err := p.Satisfies("M, S")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Satisfies("nM")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = p.Satisfies("bogus")
	require.ErrorIs(t, err, state.ErrUnrecognizedToken)
}

func TestGain(t *testing.T) {
	require.Equal(t, 0.6, state.Gain(state.Ca, 0.6))
	require.Equal(t, 0.6, state.Gain(state.CaPlus, 0.6))
	require.Equal(t, -0.4, state.Gain(state.Cr, 0.6))
	require.Equal(t, 0.0, state.Gain(state.CrMinus, 0.6))
}

func TestDump_ContainsVerdict(t *testing.T) {
	p := state.UpperBoundPriority()
	require.Contains(t, p.Dump(), "monotonic & submodular (M - S)")
}
