package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.ServiceURL != "http://127.0.0.1:8080" {
		t.Errorf("expected default service_url, got %q", cfg.ServiceURL)
	}
	if cfg.Title != "Cryptography" {
		t.Errorf("expected default title %q, got %q", "Cryptography", cfg.Title)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected 10s request timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("expected default max_retries 2, got %d", cfg.MaxRetries)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cryptobook.yml")

	original := DefaultConfig()
	original.Port = 4100
	original.ServiceURL = "https://crypto.example.com"
	original.RoutesFile = "book.yml"
	original.Title = "Applied Cryptography"
	original.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("CRYPTOBOOK_SERVICE_URL", "http://crypto:9000")
	t.Setenv("CRYPTOBOOK_PORT", "8181")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ServiceURL != "http://crypto:9000" {
		t.Errorf("env override failed: got %q", loaded.ServiceURL)
	}
	if loaded.Port != 8181 {
		t.Errorf("env override failed: got port %d", loaded.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty service url", func(c *Config) { c.ServiceURL = "" }},
		{"relative service url", func(c *Config) { c.ServiceURL = "crypto:8080/api" }},
		{"unsupported scheme", func(c *Config) { c.ServiceURL = "ftp://crypto" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"zero timeout", func(c *Config) { c.RequestTimeoutSeconds = 0 }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"3000", 3000, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"http", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePort(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parsePort(%q) = %d, %v", tt.input, got, err)
		}
	}
}
