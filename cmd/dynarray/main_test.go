package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/katalvlaran/dynarray/internal/config"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, configFile = false, ""
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestTraceCommand(t *testing.T) {
	out, err := execute(t, "trace", "--appends", "5", "--plot=false")
	require.NoError(t, err)
	assert.Contains(t, out, "5 appends")
	assert.Contains(t, out, "reallocations=4")
	assert.Contains(t, out, "cap=8")
}

func TestTraceCommand_ConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	cfg := config.DefaultConfig()
	cfg.Appends = 3
	cfg.Plot.Enabled = false
	require.NoError(t, config.Save(path, cfg))

	out, err := execute(t, "trace", "--config", path, "--resize", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "3 appends")
	assert.Contains(t, out, "len=10 cap=10")
}

func TestTraceCommand_AllocationFailure(t *testing.T) {
	out, err := execute(t, "trace", "-n", "6", "--max-capacity", "2", "--plot=false")
	require.ErrorIs(t, err, dynarray.ErrAllocationFailure)
	assert.Contains(t, out, "reallocations=2", "partial trace is still printed")
}

func TestTraceCommand_InvalidConfig(t *testing.T) {
	_, err := execute(t, "trace", "-n", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestScenarioCommand(t *testing.T) {
	out, err := execute(t, "scenario")
	require.NoError(t, err)
	assert.Contains(t, out, "append")
	assert.Contains(t, out, "literal")
	assert.Contains(t, out, "resize")
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}
