// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: TOML settings file: defaults, load, save, validation.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Weather WeatherConfig `toml:"weather"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig contains dashboard presentation settings.
type UIConfig struct {
	CardWidth         int  `toml:"card_width"`         // Uniform card width in cells
	Gap               int  `toml:"gap"`                // Gap between cards in cells
	AnimationsEnabled bool `toml:"animations_enabled"` // Run weather animations
}

// WeatherConfig contains refresh and seed-city settings.
type WeatherConfig struct {
	RefreshInterval string   `toml:"refresh_interval"` // Per-city refresh period (e.g. "10m")
	Cities          []string `toml:"cities"`           // Cities added on first run
}

// LogConfig contains log output settings.
type LogConfig struct {
	FilePath string `toml:"file_path"` // Log destination; empty keeps stderr
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			CardWidth:         34,
			Gap:               2,
			AnimationsEnabled: true,
		},
		Weather: WeatherConfig{
			RefreshInterval: "10m",
			Cities:          []string{"Oslo", "Lisbon", "Singapore"},
		},
	}
}

// DefaultPath returns the conventional settings file location, creating
// its directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	root := filepath.Join(configDir, "stratus")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return filepath.Join(root, "config.toml"), nil
}

// Load loads the configuration from path. A missing file yields the
// default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.UI.CardWidth < 10 {
		return fmt.Errorf("card width too small: %d", c.UI.CardWidth)
	}
	if c.UI.Gap < 0 {
		return fmt.Errorf("gap cannot be negative: %d", c.UI.Gap)
	}
	if _, err := time.ParseDuration(c.Weather.RefreshInterval); err != nil {
		return fmt.Errorf("invalid refresh interval %q: %w", c.Weather.RefreshInterval, err)
	}
	return nil
}

// RefreshInterval returns the weather refresh period as a duration.
func (c *Config) RefreshInterval() (time.Duration, error) {
	return time.ParseDuration(c.Weather.RefreshInterval)
}
