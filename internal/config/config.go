// Package config loads CLI settings from an optional YAML file and
// STEPWISE_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/stepwise/internal/logging"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvLogLevel         = logging.EnvLevel
	EnvLogFormat        = "STEPWISE_LOG_FORMAT"
	EnvMaxSteps         = "STEPWISE_MAX_STEPS"
	EnvConfirmDecisions = "STEPWISE_CONFIRM_DECISIONS"
	EnvMetricsAddr      = "STEPWISE_METRICS_ADDR"
	EnvRedisAddr        = "STEPWISE_REDIS_ADDR"
)

// Log configures the application logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config holds every setting of the stepwise CLI.
type Config struct {
	Log              Log    `yaml:"log"`
	MaxSteps         int    `yaml:"max_steps"`
	ConfirmDecisions bool   `yaml:"confirm_decisions"`
	MetricsAddr      string `yaml:"metrics_addr"`
	RedisAddr        string `yaml:"redis_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: string(logging.FormatText)},
	}
}

// Load reads path (if not empty) over the defaults, then applies the
// environment. A missing file is an error only when path was given.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvMaxSteps); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxSteps, err)
		}
		c.MaxSteps = n
	}
	if v, ok := lookup(EnvConfirmDecisions); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvConfirmDecisions, err)
		}
		c.ConfirmDecisions = b
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		c.MetricsAddr = v
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		c.RedisAddr = v
	}
	return nil
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch logging.Format(strings.ToLower(c.Log.Format)) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if c.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("max_steps must not be negative"))
	}
	return errors.Join(errs...)
}

// Logger builds the application logger described by c.
func (c Config) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(level, logging.Format(strings.ToLower(c.Log.Format))), nil
}
