package cliargs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/cliargs"
)

func TestDefault_IsValidOnceRequiredFieldsAreSet(t *testing.T) {
	cfg := cliargs.Default()
	cfg.GraphPath = "g.txt"
	cfg.SeedSetPath = "s.txt"
	cfg.K = 5
	require.NoError(t, cfg.Validate())
}

func TestDefault_MissingRequiredFields(t *testing.T) {
	cfg := cliargs.Default()
	require.ErrorIs(t, cfg.Validate(), cliargs.ErrMissingRequired)
}

func TestLoadFile_EmptyPathReturnsBase(t *testing.T) {
	base := cliargs.Default()
	cfg, err := cliargs.LoadFile("", base)
	require.NoError(t, err)
	require.Equal(t, base, cfg)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := cliargs.LoadFile(filepath.Join(t.TempDir(), "nope.toml"), cliargs.Default())
	require.Error(t, err)
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c2boost.toml")
	content := []byte("graph_path = \"g.txt\"\nseed_set_path = \"s.txt\"\nk = 10\nlambda = 0.75\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := cliargs.LoadFile(path, cliargs.Default())
	require.NoError(t, err)
	require.Equal(t, "g.txt", cfg.GraphPath)
	require.Equal(t, "s.txt", cfg.SeedSetPath)
	require.Equal(t, uint64(10), cfg.K)
	require.Equal(t, 0.75, cfg.Lambda)
	require.Equal(t, "auto", cfg.Algo) // untouched default survives

	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadLambda(t *testing.T) {
	cfg := cliargs.Default()
	cfg.GraphPath, cfg.SeedSetPath, cfg.K = "g", "s", 1
	cfg.Lambda = 1.5
	require.ErrorIs(t, cfg.Validate(), cliargs.ErrOutOfRange)
}

func TestValidate_RejectsBadPriority(t *testing.T) {
	cfg := cliargs.Default()
	cfg.GraphPath, cfg.SeedSetPath, cfg.K = "g", "s", 1
	cfg.PriorityStr = "Ca > Ca > Cr > Cr-"
	require.ErrorIs(t, cfg.Validate(), cliargs.ErrNotAPermutation)
}

func TestValidate_RejectsUnknownAlgo(t *testing.T) {
	cfg := cliargs.Default()
	cfg.GraphPath, cfg.SeedSetPath, cfg.K = "g", "s", 1
	cfg.Algo = "bogus"
	require.ErrorIs(t, cfg.Validate(), cliargs.ErrInvalidEnum)
}
