package cliargs

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/c2boost/state"
)

// Config is the set of CLI arguments (spec's "External Interfaces"
// table). LoadFile fills it from a TOML file over a base Config; the
// select command fills it from its own flags, starting from Default(),
// and does not apply a loaded file's values. Algo is still the raw
// (possibly "auto") choice; call Resolve(Algo, Priority) once Priority
// is parsed.
type Config struct {
	GraphPath   string `toml:"graph_path"`
	SeedSetPath string `toml:"seed_set_path"`

	Algo         string `toml:"algo"`
	PriorityStr  string `toml:"priority"`
	Lambda       float64 `toml:"lambda"`
	K            uint64  `toml:"k"`
	SampleLimit  uint64  `toml:"sample_limit"`
	SampleLimitSA uint64 `toml:"sample_limit_sa"`
	SampleDistLimitSA int `toml:"sample_dist_limit_sa"`
	TestTimes    uint64  `toml:"test_times"`
	Ell          float64 `toml:"ell"`
	Epsilon      float64 `toml:"epsilon"`
	EpsilonSA    float64 `toml:"epsilon_sa"`
	GainThresholdSA float64 `toml:"gain_threshold_sa"`
	NThreads     int     `toml:"n_threads"`

	MetricsAddr string `toml:"metrics_addr"`
	JSON        bool    `toml:"json"`
	Seed        uint64  `toml:"seed"`
}

// Default returns the documented defaults: algo auto, the canonical
// upper-bound priority string, lambda = 0.5, testTimes = 10000,
// ell = 1, epsilon = 0.5, one worker thread. Config carries no delta;
// callers pass delta = 1-1/e to imm.NewParams themselves.
func Default() Config {
	return Config{
		Algo:            "auto",
		PriorityStr:     "Ca+ > Cr- > Cr > Ca",
		Lambda:          0.5,
		SampleLimit:     1 << 40,
		SampleLimitSA:   1 << 30,
		TestTimes:       10000,
		Ell:             1.0,
		Epsilon:         0.5,
		EpsilonSA:       0.5,
		GainThresholdSA: 1e-3,
		NThreads:        1,
	}
}

// LoadFile reads a TOML config file into a copy of base, returning base
// unchanged if path is empty. Fields absent from the file keep base's
// value.
func LoadFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	if !fileExists(path) {
		return Config{}, fmt.Errorf("cliargs: config file %q does not exist", path)
	}
	if _, err := toml.DecodeFile(path, &base); err != nil {
		return Config{}, fmt.Errorf("cliargs: reading config file %q: %w", path, err)
	}
	return base, nil
}

// Validate checks required fields and numeric ranges, returning a
// sentinel-wrapped error for the first violation found.
func (c Config) Validate() error {
	if c.GraphPath == "" {
		return fmt.Errorf("%w: graph-path", ErrMissingRequired)
	}
	if c.SeedSetPath == "" {
		return fmt.Errorf("%w: seed-set-path", ErrMissingRequired)
	}
	if _, err := ParseAlgoChoice(c.Algo); err != nil {
		return err
	}
	if _, err := state.ParsePriority(c.PriorityStr); err != nil {
		return fmt.Errorf("%w: priority %q: %v", ErrNotAPermutation, c.PriorityStr, err)
	}
	if c.Lambda < 0 || c.Lambda > 1 {
		return fmt.Errorf("%w: lambda %v", ErrOutOfRange, c.Lambda)
	}
	if c.K == 0 {
		return fmt.Errorf("%w: k", ErrMissingRequired)
	}
	if c.Epsilon <= 0 || c.EpsilonSA <= 0 {
		return fmt.Errorf("%w: epsilon must be positive", ErrOutOfRange)
	}
	if c.Ell <= 0 {
		return fmt.Errorf("%w: ell must be positive", ErrOutOfRange)
	}
	if c.GainThresholdSA < 0 || c.GainThresholdSA > 1 {
		return fmt.Errorf("%w: gain-threshold-sa %v", ErrOutOfRange, c.GainThresholdSA)
	}
	if c.NThreads <= 0 {
		return fmt.Errorf("%w: n-threads", ErrOutOfRange)
	}
	return nil
}

// fileExists reports whether path names a readable regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
