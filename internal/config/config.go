// Package config loads the game configuration: a yaml file with env
// overrides. A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the game looks without an override.
const DefaultConfigPath = "config/emberfall.yaml"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "EMBERFALL_CONFIG"

// EnvSaveDir overrides the save directory.
const EnvSaveDir = "EMBERFALL_SAVE_DIR"

// Game holds all configuration for the game binary.
type Game struct {
	// SaveDir is where character and account documents live.
	SaveDir string `yaml:"save_dir"`

	// LogLevel: debug, info, warn, error (default: info).
	LogLevel string `yaml:"log_level"`

	// AutosaveSeconds is loaded and defaulted (default: 30). The game
	// binary does not read it: autosave follows the engine's fixed
	// 300-tick ShouldSave schedule.
	AutosaveSeconds int `yaml:"autosave_seconds"`

	// Seed forces the RNG seed; 0 derives one from the clock at start.
	Seed uint64 `yaml:"seed"`
}

// defaults returns the stock configuration.
func defaults() Game {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Game{
		SaveDir:         filepath.Join(home, ".emberfall", "saves"),
		LogLevel:        "info",
		AutosaveSeconds: 30,
	}
}

// Load reads configuration in priority order: defaults, then the yaml
// file, then environment variables. A .env file in the working
// directory is folded into the environment first when present.
func Load() (Game, error) {
	// .env is optional developer convenience; a missing file is fine.
	_ = godotenv.Load()

	cfg := defaults()

	path := DefaultConfigPath
	if p := os.Getenv(EnvConfigPath); p != "" {
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if dir := os.Getenv(EnvSaveDir); dir != "" {
		cfg.SaveDir = dir
	}
	if cfg.AutosaveSeconds <= 0 {
		cfg.AutosaveSeconds = 30
	}
	return cfg, nil
}

// ParseLogLevel maps the config string to a slog level, defaulting to
// info on unknown values.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
