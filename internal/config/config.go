// Package config loads the hosted shell configuration from an optional
// TOML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the hosted kernel configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Screen  ScreenConfig  `toml:"screen"`
	Shell   ShellConfig   `toml:"shell"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

type ScreenConfig struct {
	Foreground   string `toml:"foreground"`
	Background   string `toml:"background"`
	ClearOnStart bool   `toml:"clear_on_start"`
}

type ShellConfig struct {
	Prompt string `toml:"prompt"`
	Banner bool   `toml:"banner"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Path:   "charizard.log",
		},
		Screen: ScreenConfig{
			Foreground:   "silver",
			Background:   "black",
			ClearOnStart: true,
		},
		Shell: ShellConfig{
			Prompt: "> ",
			Banner: true,
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// CHARIZARD_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Log.Level = envOr("CHARIZARD_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOr("CHARIZARD_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Path = envOr("CHARIZARD_LOG_PATH", cfg.Log.Path)
	cfg.Metrics.Addr = envOr("CHARIZARD_METRICS_ADDR", cfg.Metrics.Addr)
	cfg.Screen.Foreground = envOr("CHARIZARD_FOREGROUND", cfg.Screen.Foreground)
	cfg.Screen.Background = envOr("CHARIZARD_BACKGROUND", cfg.Screen.Background)
	cfg.Screen.ClearOnStart = envBool("CHARIZARD_CLEAR_ON_START", cfg.Screen.ClearOnStart)
	cfg.Shell.Prompt = envOr("CHARIZARD_PROMPT", cfg.Shell.Prompt)
	cfg.Shell.Banner = envBool("CHARIZARD_BANNER", cfg.Shell.Banner)

	if cfg.Shell.Prompt == "" {
		return nil, fmt.Errorf("shell prompt must not be empty")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
