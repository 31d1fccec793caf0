package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/krehermann/xorcrack/crack"
)

// Config holds CLI configuration for xorcrack.
type Config struct {
	MinLetterRatio float64
	Workers        int
	LogLevel       string
	Confirm        bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MinLetterRatio: crack.DefaultMinLetterRatio,
		Workers:        1,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MinLetterRatio < 0 || c.MinLetterRatio >= 1 {
		return fmt.Errorf("min letter ratio must be in [0, 1), got %g", c.MinLetterRatio)
	}
	if c.Workers < 1 || c.Workers > 256 {
		return fmt.Errorf("workers must be between 1 and 256, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// AttackOptions converts the configuration into crack options.
func (c Config) AttackOptions(log zerolog.Logger) []crack.Option {
	return []crack.Option{
		crack.WithMinLetterRatio(c.MinLetterRatio),
		crack.WithWorkers(c.Workers),
		crack.WithLogger(log),
	}
}

// configSetter applies values only when the matching flag was not set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat takes a pointer so that an explicit zero is applied.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	// an explicit zero or negative is kept so Validate can reject it
	*dst = i
	return nil
}

func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	s.setFloat(flag, &f, dst)
	return nil
}

// setBoolFromString accepts "true" and "1" as true.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
