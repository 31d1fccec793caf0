package cliconfig

import "os"

const (
	EnvMinLetterRatio = "XORCRACK_MIN_LETTER_RATIO"
	EnvWorkers        = "XORCRACK_WORKERS"
	EnvLogLevel       = "XORCRACK_LOG_LEVEL"
	EnvConfirm        = "XORCRACK_CONFIRM"
)

// ApplyEnvConfig applies XORCRACK_* variables. They override the file but
// not flags that were set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setFloatFromString("min-letter-ratio", os.Getenv(EnvMinLetterRatio), &cfg.MinLetterRatio); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv(EnvWorkers), &cfg.Workers); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setBoolFromString("confirm", os.Getenv(EnvConfirm), &cfg.Confirm)
	return nil
}
