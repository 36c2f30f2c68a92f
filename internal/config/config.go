// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	EngineEnvConfig
	TableEnvConfig
	ServerEnvConfig
	ClientEnvConfig
	LogEnvConfig
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(ctx context.Context) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

// LoadConfigWith resolves the configuration from an arbitrary lookuper, which
// lets tests supply a map instead of the process environment.
func LoadConfigWith(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLogConfig reads only the logger settings from the process environment.
func LoadLogConfig(ctx context.Context) (*LogEnvConfig, error) {
	return LoadLogConfigWith(ctx, envconfig.OsLookuper())
}

func LoadLogConfigWith(ctx context.Context, lookuper envconfig.Lookuper) (*LogEnvConfig, error) {
	cfg := &LogEnvConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	if c.ScorePrecision < 0 || c.ScorePrecision > 15 {
		return fmt.Errorf("TOPSIS_SCORE_PRECISION must be between 0 and 15, got %d", c.ScorePrecision)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("TOPSIS_DELIMITER must be a single character, got %q", c.Delimiter)
	}
	if c.ScoreColumn == "" || c.RankColumn == "" {
		return fmt.Errorf("TOPSIS_SCORE_COLUMN and TOPSIS_RANK_COLUMN cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Port)
	}
	return nil
}

// EngineEnvConfig configures the scoring engine.
type EngineEnvConfig struct {
	ScorePrecision int `env:"TOPSIS_SCORE_PRECISION, default=3"`
}

// TableEnvConfig configures the delimited table reader and writer.
type TableEnvConfig struct {
	Delimiter   string `env:"TOPSIS_DELIMITER, default=,"`
	ScoreColumn string `env:"TOPSIS_SCORE_COLUMN, default=Topsis Score"`
	RankColumn  string `env:"TOPSIS_RANK_COLUMN, default=Rank"`
}

// Comma returns the delimiter as a rune.
func (t TableEnvConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(t.Delimiter)
	return r
}

// ServerEnvConfig configures the ranking server.
type ServerEnvConfig struct {
	Host      string `env:"SERVER_HOST, default=0.0.0.0"`
	Port      int    `env:"SERVER_PORT, default=8888"`
	BodyLimit int    `env:"SERVER_BODY_LIMIT, default=4194304"`
}

// ClientEnvConfig configures the ranking client.
type ClientEnvConfig struct {
	ClientTimeout  time.Duration `env:"CLIENT_TIMEOUT, default=30s"`
	ClientRetryMax int           `env:"CLIENT_RETRY_MAX, default=3"`
}

// LogEnvConfig selects the log level.
type LogEnvConfig struct {
	Environment string `env:"ENVIRONMENT, default=prod"`
	LogLevel    string `env:"LOG_LEVEL"`
}
