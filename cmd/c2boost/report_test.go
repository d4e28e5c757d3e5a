package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/imm"
)

func TestNewReport_StampsRunID(t *testing.T) {
	r := newReport("pr-imm", "g.txt")
	require.NotEmpty(t, r.RunID)
	require.Equal(t, "pr-imm", r.Algorithm)
	require.Equal(t, "g.txt", r.GraphPath)
}

func TestFromResultItem(t *testing.T) {
	r := newReport("pr-imm", "g.txt")
	item := imm.ResultItem{
		BoostedNodes: []int{1, 2, 3},
		TotalGain:    4.5,
		SampleCount:  1000,
		TimeUsed:     2 * time.Second,
	}
	r = r.fromResultItem(item)
	require.Equal(t, []int{1, 2, 3}, r.BoostedNodes)
	require.Equal(t, 4.5, r.TotalGain)
	require.Equal(t, uint64(1000), r.SampleCount)
	require.Equal(t, 2*time.Second, r.Elapsed)
}

func TestFromTwoSided_UsesLowerBoundSelection(t *testing.T) {
	r := newReport("sa-imm", "g.txt")
	res := imm.TwoSidedResult{
		UpperBound: imm.ResultItem{BoostedNodes: []int{9, 9}, TotalGain: 10, TimeUsed: time.Second},
		LowerBound: imm.ResultItem{BoostedNodes: []int{1, 2}, TotalGain: 7, SampleCount: 50, TimeUsed: time.Second},
	}
	r = r.fromTwoSided(res)
	require.Equal(t, []int{1, 2}, r.BoostedNodes)
	require.Equal(t, 7.0, r.TotalGain)
	require.Equal(t, 10.0, r.UpperBound)
	require.Equal(t, 7.0, r.LowerBound)
	require.Equal(t, 2*time.Second, r.Elapsed)
}

func TestRender_YAMLAndJSON(t *testing.T) {
	r := newReport("greedy", "g.txt")
	r.BoostedNodes = []int{1, 2}
	r.TotalGain = 3.14

	yamlOut, err := r.render(false)
	require.NoError(t, err)
	require.Contains(t, yamlOut, "algorithm: greedy")

	jsonOut, err := r.render(true)
	require.NoError(t, err)
	require.Contains(t, jsonOut, "\"algorithm\": \"greedy\"")
}
