// Package config loads process-wide settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every tunable the CLI reads at startup.
type Config struct {
	// DataDir holds the save slot and, for relative paths, the results DB.
	DataDir string `env:"MASTERMIND_DATA_DIR" envDefault:"."`

	// DBPath is the SQLite results ledger. ":memory:" disables persistence.
	DBPath string `env:"MASTERMIND_DB" envDefault:"mastermind.db"`

	// MaxAttempts is the attempt budget for new games.
	MaxAttempts int `env:"MASTERMIND_MAX_ATTEMPTS" envDefault:"10"`

	// CheatDefault is the initial cheat setting for new games.
	CheatDefault bool `env:"MASTERMIND_CHEAT" envDefault:"false"`

	// Lang selects the renderer's message catalog (BCP 47).
	Lang string `env:"MASTERMIND_LANG" envDefault:"en-US"`

	// DailySalt keys the daily code derivation.
	DailySalt string `env:"MASTERMIND_DAILY_SALT" envDefault:"mastermind"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"NO_COLOR"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would make every game unplayable.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("MASTERMIND_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// ResultsDSN resolves DBPath against DataDir.
func (c Config) ResultsDSN() string {
	if c.DBPath == ":memory:" || filepath.IsAbs(c.DBPath) {
		return c.DBPath
	}
	return filepath.Join(c.DataDir, c.DBPath)
}
