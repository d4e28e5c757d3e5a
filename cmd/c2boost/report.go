package main

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/c2boost/imm"
)

// Report is the CLI's human/machine-readable output: one algorithm
// outcome plus run metadata (run ID, algorithm, elapsed time) as
// structured fields instead of formatted text.
type Report struct {
	RunID        string        `yaml:"run_id" json:"run_id"`
	Algorithm    string        `yaml:"algorithm" json:"algorithm"`
	GraphPath    string        `yaml:"graph_path" json:"graph_path"`
	BoostedNodes []int         `yaml:"boosted_nodes" json:"boosted_nodes"`
	TotalGain    float64       `yaml:"total_gain" json:"total_gain"`
	SampleCount  uint64        `yaml:"sample_count,omitempty" json:"sample_count,omitempty"`
	UpperBound   float64       `yaml:"upper_bound,omitempty" json:"upper_bound,omitempty"`
	LowerBound   float64       `yaml:"lower_bound,omitempty" json:"lower_bound,omitempty"`
	Elapsed      time.Duration `yaml:"elapsed" json:"elapsed"`
}

// newReport stamps a fresh run ID (google/uuid) for the given
// algorithm/graph pair.
func newReport(algo, graphPath string) Report {
	return Report{RunID: uuid.NewString(), Algorithm: algo, GraphPath: graphPath}
}

// fromResultItem fills in the single-bound fields from one ResultItem.
func (r Report) fromResultItem(item imm.ResultItem) Report {
	r.BoostedNodes = item.BoostedNodes
	r.TotalGain = item.TotalGain
	r.SampleCount = item.SampleCount
	r.Elapsed = item.TimeUsed
	return r
}

// fromTwoSided fills in both bounds from an SA-IMM TwoSidedResult,
// using the lower bound's boosted set as the actual selection (the
// upper bound is PR-IMM over a relaxed priority, informative only).
func (r Report) fromTwoSided(res imm.TwoSidedResult) Report {
	r.BoostedNodes = res.LowerBound.BoostedNodes
	r.TotalGain = res.LowerBound.TotalGain
	r.UpperBound = res.UpperBound.TotalGain
	r.LowerBound = res.LowerBound.TotalGain
	r.SampleCount = res.LowerBound.SampleCount
	r.Elapsed = res.UpperBound.TimeUsed + res.LowerBound.TimeUsed
	return r
}

// render encodes the report as YAML by default, or JSON (via goccy's
// drop-in encoder) when asJSON is set.
func (r Report) render(asJSON bool) (string, error) {
	if asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		return string(b), err
	}
	b, err := yaml.Marshal(r)
	return string(b), err
}
