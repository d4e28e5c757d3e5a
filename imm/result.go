package imm

import "time"

// ResultItem is one algorithm outcome at a given sample count: the
// chosen boosted nodes, the estimated total gain they achieve (scaled
// up to the full graph, i.e. |V| * E[gain / |R|]), and how long
// sampling+selection took.
type ResultItem struct {
	BoostedNodes []int
	TotalGain    float64
	SampleCount  uint64
	TimeUsed     time.Duration
}

// Result maps a sample count (or, for SA-IMM, samples-per-center) to
// the ResultItem measured there, letting callers compare quality
// against cost across a static schedule or read the single dynamic
// result.
type Result struct {
	Items map[uint64]ResultItem
}
