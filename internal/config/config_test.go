package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-stream/internal/config"
)

func load(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	return config.Load(config.NewFlagSet("test"), args)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.NoColor)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.Scenarios)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t,
		"--log-level", "debug",
		"--log-format", "console",
		"--log-no-color",
		"--workers", "2",
		"--scenario", "of-nil",
		"--scenario", "salary-total",
	)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Log.NoColor)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"of-nil", "salary-total"}, cfg.Scenarios)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STREAMDEMO_WORKERS", "7")
	t.Setenv("STREAMDEMO_LOG_LEVEL", "warn")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg, err = load(t, "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers, "flags take precedence over the environment")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamdemo.yaml")
	content := []byte(`
log:
  level: error
  format: console
workers: 6
scenarios:
  - top-earners
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, []string{"top-earners"}, cfg.Scenarios)

	cfg, err = load(t, "--config", path, "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := load(t, "--workers", "-1")
	assert.ErrorContains(t, err, "workers must be positive")

	_, err = load(t, "--log-format", "xml")
	assert.ErrorContains(t, err, "log.format")

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = load(t, "--no-such-flag")
	assert.Error(t, err)

	_, err = load(t, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
