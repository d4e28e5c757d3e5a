package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/ioformat"
)

func TestReadSeedSet_Valid(t *testing.T) {
	src := "2\n0 1\n1\n2\n"
	seeds, err := ioformat.ReadSeedSet(strings.NewReader(src), 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, seeds.Sa)
	require.Equal(t, []int{2}, seeds.Sr)
}

func TestReadSeedSet_Truncated(t *testing.T) {
	_, err := ioformat.ReadSeedSet(strings.NewReader("2\n0\n"), 3)
	require.ErrorIs(t, err, ioformat.ErrTruncated)
}

func TestReadSeedSet_OverlappingSeeds(t *testing.T) {
	src := "1\n0\n1\n0\n"
	_, err := ioformat.ReadSeedSet(strings.NewReader(src), 3)
	require.Error(t, err)
}
