package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with optional fields so zero values in the
// file can be told apart from missing keys.
type FileConfig struct {
	MinLetterRatio *float64 `toml:"min_letter_ratio"`
	Workers        int      `toml:"workers"`
	LogLevel       string   `toml:"log_level"`
	Confirm        *bool    `toml:"confirm"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.xorcrack/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".xorcrack", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg unless the matching flag was
// set on the command line.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setFloat("min-letter-ratio", fc.MinLetterRatio, &cfg.MinLetterRatio)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("confirm", fc.Confirm, &cfg.Confirm)
}

func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
