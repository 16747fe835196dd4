package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(EnvSaveDir, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.AutosaveSeconds)
	assert.NotEmpty(t, cfg.SaveDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emberfall.yaml")
	raw := "save_dir: /tmp/ef-saves\nlog_level: debug\nautosave_seconds: 10\nseed: 99\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvSaveDir, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ef-saves", cfg.SaveDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.AutosaveSeconds)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emberfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save_dir: /from-file\n"), 0o644))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvSaveDir, "/from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from-env", cfg.SaveDir)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))
	t.Setenv(EnvConfigPath, path)

	_, err := Load()
	assert.Error(t, err)
}

func TestAutosaveFloor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emberfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("autosave_seconds: -3\n"), 0o644))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvSaveDir, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.AutosaveSeconds)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("bogus"))
}
