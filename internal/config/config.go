package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the runtime settings shared by the interactive shell and
// cmd/plan. Calorie policy limits are not configurable.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"console"`
	PlanFormat string `env:"PLAN_FORMAT" envDefault:"text"`
	MinAge     int    `env:"MIN_AGE" envDefault:"18"`
	SeniorAge  int    `env:"SENIOR_AGE" envDefault:"80"`
}

// Load reads an optional .env file (missing files are ignored, existing
// environment variables win) and parses the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	switch c.PlanFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("PLAN_FORMAT must be text, json or yaml, got %q", c.PlanFormat)
	}
	if c.MinAge < 0 || c.SeniorAge < c.MinAge {
		return fmt.Errorf("age limits out of order: MIN_AGE=%d SENIOR_AGE=%d", c.MinAge, c.SeniorAge)
	}
	return nil
}

// NewLogger builds a zap logger writing to stderr, leaving stdout to the
// interactive transcript.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
