package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriterTagsRecords(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "")
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "cryptobook", "v1.2.3", "warn")

	log.Info("dropped")
	log.Warn("kept", "path", "/week1")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected exactly one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "kept" || rec["module"] != "cryptobook" || rec["version"] != "v1.2.3" || rec["path"] != "/week1" {
		t.Errorf("record = %v", rec)
	}
}

func TestEnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")
	var buf bytes.Buffer
	NewWithWriter(&buf, "m", "v", "debug").Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("warn should be filtered at error level: %s", buf.String())
	}
}
