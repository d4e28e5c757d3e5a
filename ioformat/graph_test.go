package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/ioformat"
)

func TestReadGraph_Valid(t *testing.T) {
	src := "3 2\n0 1 0.1 0.5\n1 2 0.2 0.6\n"
	g, err := ioformat.ReadGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestReadGraph_BadHeader(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func TestReadGraph_Truncated(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("2 3\n0 1 0.1 0.5\n"))
	require.ErrorIs(t, err, ioformat.ErrTruncated)
}

func TestReadGraph_OutOfRangeNode(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("2 1\n0 5 0.1 0.5\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedLine)
}

func TestReadGraph_BadProbability(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("2 1\n0 1 0.6 0.5\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedLine)
}
