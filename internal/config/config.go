// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	engine "github.com/pdillon/blockfall/engine"
)

// Config holds the tunable parameters for running game sessions.
type Config struct {
	// Seed for the session RNG. 0 selects a time-derived seed at the
	// call site.
	Seed uint64 `env:"BLOCKFALL_SEED" envDefault:"0"`

	// Gravity speed parameters, in milliseconds.
	InitialTickMs uint16 `env:"BLOCKFALL_INITIAL_TICK_MS" envDefault:"500"`
	TickStepMs    uint16 `env:"BLOCKFALL_TICK_STEP_MS" envDefault:"20"`
	MinTickMs     uint16 `env:"BLOCKFALL_MIN_TICK_MS" envDefault:"100"`

	LogLevel string `env:"BLOCKFALL_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; a missing file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MinTickMs > cfg.InitialTickMs {
		return Config{}, fmt.Errorf("minimum tick interval %dms exceeds initial %dms", cfg.MinTickMs, cfg.InitialTickMs)
	}
	return cfg, nil
}

// Rules converts the speed parameters into engine rules.
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		InitialTickMs: c.InitialTickMs,
		TickStepMs:    c.TickStepMs,
		MinTickMs:     c.MinTickMs,
	}
}

// Logger builds a logrus logger at the configured level. An unknown
// level falls back to info.
func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
