package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNewDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DD.GracePeriod != time.Second {
		t.Errorf("GracePeriod = %v, want 1s", cfg.DD.GracePeriod)
	}
	if cfg.Display.DiagnosticLines != 5 {
		t.Errorf("DiagnosticLines = %d, want 5", cfg.Display.DiagnosticLines)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty dd path", func(c *Config) { c.DD.Path = "" }, ErrInvalidDDPath},
		{"empty progress flag", func(c *Config) { c.DD.ProgressFlag = "" }, ErrInvalidProgressFlag},
		{"negative grace period", func(c *Config) { c.DD.GracePeriod = -time.Millisecond }, ErrInvalidGracePeriod},
		{"zero grace period allowed", func(c *Config) { c.DD.GracePeriod = 0 }, nil},
		{"unknown style", func(c *Config) { c.Display.Style = "fancy" }, ErrInvalidDisplayStyle},
		{"bar style", func(c *Config) { c.Display.Style = StyleBar }, nil},
		{"no diagnostic lines", func(c *Config) { c.Display.DiagnosticLines = 0 }, ErrInvalidDiagnosticRows},
		{"unknown color mode", func(c *Config) { c.Display.Color = "sometimes" }, ErrInvalidColorMode},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *NewDefaultConfig() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, NewDefaultConfig())
	}
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("dd.path", "/usr/local/bin/gdd")
	v.Set("dd.grace_period", "250ms")
	v.Set("display.diagnostic_lines", 3)
	v.Set("display.style", StyleBar)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DD.Path != "/usr/local/bin/gdd" {
		t.Errorf("DD.Path = %q", cfg.DD.Path)
	}
	if cfg.DD.GracePeriod != 250*time.Millisecond {
		t.Errorf("DD.GracePeriod = %v, want 250ms", cfg.DD.GracePeriod)
	}
	if cfg.DD.ProgressFlag != "status=progress" {
		t.Errorf("DD.ProgressFlag = %q, want default", cfg.DD.ProgressFlag)
	}
	if cfg.Display.DiagnosticLines != 3 {
		t.Errorf("Display.DiagnosticLines = %d, want 3", cfg.Display.DiagnosticLines)
	}
	if cfg.Display.Style != StyleBar {
		t.Errorf("Display.Style = %q, want bar", cfg.Display.Style)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddr.yaml")
	content := "dd:\n  grace_period: 2s\ndisplay:\n  color: never\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DD.GracePeriod != 2*time.Second {
		t.Errorf("DD.GracePeriod = %v, want 2s", cfg.DD.GracePeriod)
	}
	if cfg.Display.Color != ColorNever {
		t.Errorf("Display.Color = %q, want never", cfg.Display.Color)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("display.style", "fancy")

	if _, err := Load(v); !errors.Is(err, ErrInvalidDisplayStyle) {
		t.Errorf("Load() error = %v, want %v", err, ErrInvalidDisplayStyle)
	}
}
