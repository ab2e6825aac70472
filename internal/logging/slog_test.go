package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"ddr/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
		"bogus": slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("failed to read output from dd", "error", "bad utf-8")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `msg="failed to read output from dd"`) {
		t.Errorf("unexpected record: %q", out)
	}
	if !strings.Contains(out, "app=ddr") {
		t.Errorf("record missing app attribute: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("record should not carry a timestamp: %q", out)
	}
}

func TestInitSetsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(config.LogConfig{Level: "debug"}, &buf)
	slog.Debug("probe")

	if !strings.Contains(buf.String(), "msg=probe") {
		t.Errorf("default logger not installed: %q", buf.String())
	}
}
