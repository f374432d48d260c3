// Package config reads the environment settings of the vivid command.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds settings shared by every command. Flags override them.
type Config struct {
	Format string `env:"VIVID_FORMAT" envDefault:"text"`
	// PhaseSeparator joins digits in text output. Empty uses the default.
	PhaseSeparator string `env:"VIVID_PHASE_SEPARATOR"`
	// Timezone applies to parsed times that carry no zone of their own.
	Timezone string     `env:"VIVID_TIMEZONE" envDefault:"UTC"`
	LogLevel slog.Level `env:"VIVID_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the format and timezone.
func (c Config) Validate() error {
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// ValidateFormat rejects unknown output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid format %q: must be text, json, or yaml", format)
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
