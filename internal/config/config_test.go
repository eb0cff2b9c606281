package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDB, EnvData, EnvLog, EnvLogFile, EnvTheme} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".promocal", "promocal.db"), cfg.DBPath)
	assert.Empty(t, cfg.DataPath)
	assert.False(t, cfg.LogEnabled)
	assert.Empty(t, cfg.Theme)
	assert.Equal(t, filepath.Join(home, ".promocal", "promocal.log"), cfg.TUILogFile())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := filepath.Join(dir, "months.yaml")
	require.NoError(t, os.WriteFile(data, []byte("[]"), 0o644))

	t.Setenv(EnvDB, filepath.Join(dir, "prefs.db"))
	t.Setenv(EnvData, data)
	t.Setenv(EnvLog, "true")
	t.Setenv(EnvLogFile, filepath.Join(dir, "run.log"))
	t.Setenv(EnvTheme, "dark")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "prefs.db"), cfg.DBPath)
	assert.Equal(t, data, cfg.DataPath)
	assert.True(t, cfg.LogEnabled)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "run.log"), cfg.TUILogFile())
}

func TestLoadConfig_RejectsInvalidLogFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLog, "yes")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvLog)
}

func TestConfig_LogLevel(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())

	cfg.LogEnabled = true
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoadConfig_RejectsUnknownTheme(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTheme, "sepia")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_RejectsMissingDataFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvData, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidate_RequiresDBPath(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.Validate())
}
