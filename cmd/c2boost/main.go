// Command c2boost selects or scores a boosted node set for a
// competitive-cascade graph: "select" runs PR-IMM/SA-IMM/SA-RG-IMM,
// the brute-force greedy baseline, or a max-degree/PageRank baseline;
// "score" simulates an already-chosen set's effect; "gen" writes a
// synthetic benchmark graph and seed set to disk.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/c2boost/cliargs"
	"github.com/katalvlaran/c2boost/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "c2boost",
	Short: "Competitive-cascade boosted node set selection",
	Long: `c2boost computes a k-node boosted set maximizing a lambda-weighted
objective over a competitive-cascade graph, via PRR-sketch sampling
and an adaptive martingale sample-size controller.`,
}

var (
	flagConfigPath  string
	flagMetricsAddr string
	flagJSON        bool
	flagSeed        uint64
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a TOML config file (parsed and checked; its values are not applied)")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "if set, serves Prometheus metrics on this address")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output instead of YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "seed the RNG for reproducible runs (0 = random)")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(genCmd)
}

// baseConfig loads --config's TOML file (if any) over cliargs' built-in
// defaults, then sets MetricsAddr, JSON and Seed from the root flags.
// select and score read only those three fields of the result, so the
// file's values do not reach either command; a missing or malformed
// file is still reported as an error.
func baseConfig() (cliargs.Config, error) {
	cfg, err := cliargs.LoadFile(flagConfigPath, cliargs.Default())
	if err != nil {
		return cliargs.Config{}, err
	}
	cfg.MetricsAddr = flagMetricsAddr
	cfg.JSON = flagJSON
	cfg.Seed = flagSeed
	return cfg, nil
}

func maybeServeMetrics(addr string) {
	if addr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(addr); err != nil {
			slog.Error("metrics server stopped", "err", err)
		}
	}()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
