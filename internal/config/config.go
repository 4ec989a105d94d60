// Package config loads runtime settings for the ladder CLI from the
// environment. A .env file, if present, is loaded by main before Load runs.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is the full set of CLI settings.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL"              envDefault:"warn"`
	LogFormat     string `env:"LOG_FORMAT"             envDefault:"console"`
	Seed          int64  `env:"LADDER_SEED"            envDefault:"0"`
	MaxNameLength int    `env:"LADDER_MAX_NAME_LENGTH" envDefault:"5"`
	NamesFile     string `env:"LADDER_NAMES_FILE"`
	PrizesFile    string `env:"LADDER_PRIZES_FILE"`
	Height        int    `env:"LADDER_HEIGHT"          envDefault:"0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	if cfg.Height < 0 {
		return Config{}, fmt.Errorf("LADDER_HEIGHT must not be negative, got %d", cfg.Height)
	}
	return cfg, nil
}

// Level returns the configured zerolog level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
