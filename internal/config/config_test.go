package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".campsched"), cfg.DataDir)
	assert.Equal(t, "none", cfg.Scorer)
	assert.Equal(t, DefaultThresholds, cfg.Thresholds)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.JSON)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
data_dir: /srv/camp/export
scorer: frequency
thresholds:
  streak_limit: 4
  coverage_minimum: 0.25
output:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/camp/export", cfg.DataDir)
	assert.Equal(t, "frequency", cfg.Scorer)
	assert.Equal(t, 4, cfg.Thresholds.StreakLimit)
	assert.Equal(t, 0.25, cfg.Thresholds.CoverageMinimum)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2, cfg.Thresholds.HistoryTolerance)
	assert.Equal(t, 3, cfg.Thresholds.DistributionSpread)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CAMPWATCH_SCORER", "frequency")
	t.Setenv("CAMPWATCH_DATA_DIR", "/tmp/export")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "frequency", cfg.Scorer)
	assert.Equal(t, "/tmp/export", cfg.DataDir)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "camp"), expandPath("~/camp"))
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))
	assert.Equal(t, "relative", expandPath("relative"))
}

func TestDBPath(t *testing.T) {
	path := DBPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join("campwatch", "campwatch.db")), path)
	assert.False(t, strings.HasPrefix(path, "~"), "expected ~ to be expanded: %s", path)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".config", "campwatch")), dir)
}
