package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/c2boost/baseline"
	"github.com/katalvlaran/c2boost/cliargs"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/imm"
	"github.com/katalvlaran/c2boost/ioformat"
	"github.com/katalvlaran/c2boost/state"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Choose a boosted node set",
	RunE:  runSelect,
}

var selCfg cliargs.Config

func init() {
	selCfg = cliargs.Default()
	f := selectCmd.Flags()
	f.StringVar(&selCfg.GraphPath, "graph-path", "", "input graph file")
	f.StringVar(&selCfg.SeedSetPath, "seed-set-path", "", "input seed-set file")
	f.StringVar(&selCfg.Algo, "algo", selCfg.Algo, "auto|pr-imm|sa-imm|sa-rg-imm|greedy|max-degree|page-rank")
	f.StringVar(&selCfg.PriorityStr, "priority", selCfg.PriorityStr, "priority over {Ca+,Ca,Cr,Cr-}")
	f.Float64Var(&selCfg.Lambda, "lambda", selCfg.Lambda, "objective weight in [0,1]")
	f.Uint64Var(&selCfg.K, "k", 0, "number of boosted nodes to choose")
	f.Uint64Var(&selCfg.SampleLimit, "sample-limit", selCfg.SampleLimit, "hard cap on PR-IMM sketches")
	f.Uint64Var(&selCfg.SampleLimitSA, "sample-limit-sa", selCfg.SampleLimitSA, "cap on per-center samples for SA-IMM")
	f.IntVar(&selCfg.SampleDistLimitSA, "sample-dist-limit-sa", 0, "filter centers whose distance to any seed exceeds this")
	f.Uint64Var(&selCfg.TestTimes, "test-times", selCfg.TestTimes, "simulator repetitions for the greedy baseline")
	f.Float64Var(&selCfg.Ell, "ell", selCfg.Ell, "confidence knob")
	f.Float64Var(&selCfg.Epsilon, "epsilon", selCfg.Epsilon, "approximation knob")
	f.Float64Var(&selCfg.EpsilonSA, "epsilon-sa", selCfg.EpsilonSA, "approximation knob for SA-IMM")
	f.Float64Var(&selCfg.GainThresholdSA, "gain-threshold-sa", selCfg.GainThresholdSA, "drop low-mean entries in SA-IMM collection")
	f.IntVar(&selCfg.NThreads, "n-threads", selCfg.NThreads, "worker pool size")
}

func runSelect(cmd *cobra.Command, _ []string) error {
	base, err := baseConfig()
	if err != nil {
		return err
	}
	cfg := selCfg
	cfg.MetricsAddr, cfg.JSON, cfg.Seed = base.MetricsAddr, base.JSON, base.Seed
	if err := cfg.Validate(); err != nil {
		return err
	}
	maybeServeMetrics(cfg.MetricsAddr)

	priority, err := state.ParsePriority(cfg.PriorityStr)
	if err != nil {
		return fmt.Errorf("priority: %w", err)
	}
	slog.Info("priority classification", "dump", priority.Dump())

	g, seeds, err := loadGraphAndSeeds(cfg.GraphPath, cfg.SeedSetPath)
	if err != nil {
		return err
	}

	algo, err := cliargs.ParseAlgoChoice(cfg.Algo)
	if err != nil {
		return err
	}
	algo = cliargs.Resolve(algo, priority)

	rng := newRNG(cfg.Seed)
	k := int(cfg.K)
	report := newReport(algo.String(), cfg.GraphPath)

	switch algo {
	case cliargs.AlgoPRIMM:
		params := imm.NewParams(g.NodeCount(), k, 1-1/math.E, cfg.Ell, cfg.Epsilon, cfg.SampleLimit)
		item := imm.RunPRDynamic(g, seeds, priority, cfg.Lambda, params, cfg.NThreads, rng)
		report = report.fromResultItem(item)

	case cliargs.AlgoSAIMM, cliargs.AlgoSARGIMM:
		params := imm.NewParams(g.NodeCount(), k, 1-1/math.E, cfg.Ell, cfg.EpsilonSA, cfg.SampleLimitSA)
		algoKind := imm.SAGreedy
		if algo == cliargs.AlgoSARGIMM {
			algoKind = imm.SARandomGreedy
		}
		res := imm.RunSA(g, seeds, priority, cfg.Lambda, params, cfg.GainThresholdSA, cfg.SampleDistLimitSA, algoKind, cfg.NThreads, rng)
		report = report.fromTwoSided(res)

	case cliargs.AlgoGreedy:
		start := time.Now()
		nodes := baseline.Greedy(g, seeds, priority, cfg.Lambda, k, int(cfg.TestTimes), cfg.NThreads, rng)
		report.BoostedNodes = nodes
		report.Elapsed = time.Since(start)

	case cliargs.AlgoMaxDegree:
		report.BoostedNodes = baseline.MaxDegree(g, seeds, k)

	case cliargs.AlgoPageRank:
		report.BoostedNodes = baseline.PageRank(g, seeds, k, 0.85, 1e-8)

	default:
		return fmt.Errorf("%w: algo %q", cliargs.ErrInvalidEnum, cfg.Algo)
	}

	out, err := report.render(cfg.JSON)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func loadGraphAndSeeds(graphPath, seedPath string) (*core.Graph, core.SeedSet, error) {
	gf, err := os.Open(graphPath)
	if err != nil {
		return nil, core.SeedSet{}, fmt.Errorf("opening graph file: %w", err)
	}
	defer gf.Close()
	g, err := ioformat.ReadGraph(gf)
	if err != nil {
		return nil, core.SeedSet{}, err
	}

	sf, err := os.Open(seedPath)
	if err != nil {
		return nil, core.SeedSet{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer sf.Close()
	seeds, err := ioformat.ReadSeedSet(sf, g.NodeCount())
	if err != nil {
		return nil, core.SeedSet{}, err
	}
	return g, seeds, nil
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(int64(seed)))
}
