package config

import "time"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".cryptobook.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                  3000,
		ServiceURL:            "http://127.0.0.1:8080",
		Title:                 "Cryptography",
		LogLevel:              "info",
		RequestTimeoutSeconds: 10,
		MaxRetries:            2,
	}
}

// RequestTimeout is the per-call timeout for the cryptography service.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
