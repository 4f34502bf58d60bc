// SPDX-License-Identifier: MIT
package settings_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dupguard/duplicates"
	"github.com/katalvlaran/dupguard/matrix"
	"github.com/katalvlaran/dupguard/settings"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := settings.Default()
	require.Equal(t, 4, cfg.Decimals)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.Metrics)
	require.Empty(t, cfg.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := settings.Parse([]byte("decimals: 2\nlog_level: debug\nmetrics: false\n"))
	require.NoError(t, err)
	require.Equal(t, settings.Config{Decimals: 2, LogLevel: "debug", Metrics: false}, cfg)

	// missing keys keep their defaults
	cfg, err = settings.Parse([]byte("decimals: 6\n"))
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Decimals)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.Metrics)

	cfg, err = settings.Parse([]byte("decimals: -1\n"))
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
	require.Equal(t, settings.Config{}, cfg)
	_, err = settings.Parse([]byte("log_level: loud\n"))
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
	_, err = settings.Parse([]byte("decimals: [1\n"))
	require.Error(t, err)
}

func TestFromMap(t *testing.T) {
	cfg, err := settings.FromMap(map[string]any{"decimals": 2})
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Decimals)

	cfg, err = settings.FromMap(map[string]any{"decimals": "3", "metrics": "false"})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Decimals)
	require.False(t, cfg.Metrics)

	cfg, err = settings.FromMap(nil)
	require.NoError(t, err)
	require.Equal(t, settings.Default(), cfg)

	_, err = settings.FromMap(map[string]any{"precision": 2})
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration, "unknown keyword")
	cfg, err = settings.FromMap(map[string]any{"decimals": -2})
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
	require.Equal(t, settings.Config{}, cfg, "a rejected configuration is not returned")
	require.True(t, strings.HasPrefix(err.Error(), "settings: "), err.Error())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decimals: 2\nlog_level: warn\n"), 0o600))

	cfg, err := settings.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Decimals)
	require.Equal(t, "warn", cfg.LogLevel)

	t.Setenv("DUPGUARD_DECIMALS", "5")
	t.Setenv("DUPGUARD_METRICS", "false")
	cfg, err = settings.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Decimals, "environment wins over the file")
	require.False(t, cfg.Metrics)
	require.Equal(t, "warn", cfg.LogLevel)

	cfg, err = settings.Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Decimals)

	_, err = settings.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_BadEnvironment(t *testing.T) {
	t.Setenv("DUPGUARD_DECIMALS", "many")
	cfg, err := settings.Load("")
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
	require.Equal(t, settings.Config{}, cfg)

	t.Setenv("DUPGUARD_DECIMALS", "-1")
	_, err = settings.Load("")
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
}

// TestLoad_ConfigPathFromEnvironment reads the file named by DUPGUARD_CONFIG,
// the way the example binary does; the variable itself is not a setting.
func TestLoad_ConfigPathFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decimals: 3\n"), 0o600))
	t.Setenv(settings.EnvConfig, path)
	t.Setenv("DUPGUARD_LOG_LEVEL", "debug")
	t.Setenv("DUPGUARD_UNRELATED", "x")

	cfg, err := settings.Load(os.Getenv(settings.EnvConfig))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Decimals)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Metrics)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := settings.Default()
	cfg.LogLevel = "warn"
	logger, closer, err := cfg.Logger(&buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"time":`)

	cfg.LogLevel = "loud"
	_, _, err = cfg.Logger(&buf)
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)
}

func TestLogger_File(t *testing.T) {
	cfg := settings.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "dupguard.log")
	logger, closer, err := cfg.Logger(nil)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}

func TestManagerOptions(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := settings.FromMap(map[string]any{"decimals": 2, "log_level": "debug", "metrics": false})
	require.NoError(t, err)
	logger, _, err := cfg.Logger(&buf)
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	evaluated, err := matrix.NewDenseFromRows([][]float64{{1.001, 2.004}})
	require.NoError(t, err)
	mgr, err := duplicates.NewManager(nil, evaluated, nil, nil, cfg.ManagerOptions(logger)...)
	require.NoError(t, err)
	require.Equal(t, 2, mgr.Decimals())
	require.Contains(t, buf.String(), "duplicate manager ready")

	dup, err := mgr.IsZippedDuplicate([]float64{1, 2})
	require.NoError(t, err)
	require.True(t, dup)
}
