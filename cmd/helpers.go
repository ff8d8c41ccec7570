package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/cryptobook/internal/config"
	"github.com/ziadkadry99/cryptobook/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cryptobook init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New("cryptobook", Version, level)
}
