package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/c2boost/simulate"
	"github.com/katalvlaran/c2boost/state"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Simulate a boosted node set's effect",
	RunE:  runScore,
}

var (
	scoreGraphPath   string
	scoreSeedPath    string
	scorePriorityStr string
	scoreLambda      float64
	scoreBoosted     []int
	scoreSimTimes    int
	scoreNThreads    int
)

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreGraphPath, "graph-path", "", "input graph file")
	f.StringVar(&scoreSeedPath, "seed-set-path", "", "input seed-set file")
	f.StringVar(&scorePriorityStr, "priority", "Ca+ > Cr- > Cr > Ca", "priority over {Ca+,Ca,Cr,Cr-}")
	f.Float64Var(&scoreLambda, "lambda", 0.5, "objective weight in [0,1]")
	f.IntSliceVar(&scoreBoosted, "boosted", nil, "boosted node indices")
	f.IntVar(&scoreSimTimes, "test-times", 10000, "simulator repetitions")
	f.IntVar(&scoreNThreads, "n-threads", 1, "worker pool size")
}

func runScore(cmd *cobra.Command, _ []string) error {
	base, err := baseConfig()
	if err != nil {
		return err
	}
	maybeServeMetrics(base.MetricsAddr)

	priority, err := state.ParsePriority(scorePriorityStr)
	if err != nil {
		return fmt.Errorf("priority: %w", err)
	}

	g, seeds, err := loadGraphAndSeeds(scoreGraphPath, scoreSeedPath)
	if err != nil {
		return err
	}

	rng := newRNG(base.Seed)
	start := time.Now()
	cmp := simulate.Compare(g, seeds, priority, scoreBoosted, scoreLambda, scoreSimTimes, scoreNThreads, rng)

	report := newReport("score", scoreGraphPath)
	report.BoostedNodes = scoreBoosted
	report.TotalGain = cmp.WithBoosted.TotalGain
	report.UpperBound = cmp.WithBoosted.TotalGain
	report.LowerBound = cmp.WithoutBoosted.TotalGain
	report.Elapsed = time.Since(start)

	out, err := report.render(base.JSON)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	fmt.Fprintln(cmd.OutOrStdout(), cmp.String())
	return nil
}
