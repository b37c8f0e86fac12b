// Package config loads process settings from the environment and gameplay
// tuning from an optional YAML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Save backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Settings are the environment-driven process settings.
type Settings struct {
	Environment  string `env:"HOMESTEAD_ENV" envDefault:"development"`
	LogLevelName string `env:"HOMESTEAD_LOG_LEVEL" envDefault:"info"`
	DataDir      string `env:"HOMESTEAD_DATA_DIR" envDefault:"data"`
	SaveDir      string `env:"HOMESTEAD_SAVE_DIR" envDefault:"."`
	SaveBackend  string `env:"HOMESTEAD_SAVE_BACKEND" envDefault:"file"`
	SQLitePath   string `env:"HOMESTEAD_SQLITE_PATH" envDefault:"saves.db"`
	TuningPath   string `env:"HOMESTEAD_TUNING" envDefault:"data/config.yaml"`
	WindowWidth  int    `env:"HOMESTEAD_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int    `env:"HOMESTEAD_WINDOW_HEIGHT" envDefault:"720"`
	DebugOverlay bool   `env:"HOMESTEAD_DEBUG" envDefault:"false"`
}

// Config is the full runtime configuration.
type Config struct {
	Settings
	Tuning *Tuning
}

// ParseEnv loads settings from environment variables.
func ParseEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads the environment and then the tuning file it points at.
func Load() (*Config, error) {
	s, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	t, err := LoadTuning(s.TuningPath)
	if err != nil {
		return nil, err
	}
	return &Config{Settings: s, Tuning: t}, nil
}

// Default returns a configuration with every default applied and no
// environment consulted.
func Default() *Config {
	return &Config{
		Settings: Settings{
			Environment:  "development",
			LogLevelName: "info",
			DataDir:      "data",
			SaveDir:      ".",
			SaveBackend:  BackendFile,
			SQLitePath:   "saves.db",
			TuningPath:   "data/config.yaml",
			WindowWidth:  1280,
			WindowHeight: 720,
		},
		Tuning: DefaultTuning(),
	}
}

// Validate checks the settings for values the game cannot run with.
func (s Settings) Validate() error {
	switch s.SaveBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown save backend %q (want %q or %q)", s.SaveBackend, BackendFile, BackendSQLite)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", s.WindowWidth, s.WindowHeight)
	}
	return nil
}

// LogLevel converts the configured level name.
func (s Settings) LogLevel() slog.Level {
	switch strings.ToLower(s.LogLevelName) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction reports whether the process runs in production mode.
func (s Settings) IsProduction() bool {
	return s.Environment == "production"
}
