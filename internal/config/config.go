package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrInvalidDDPath         = errors.New("dd path must be set")
	ErrInvalidProgressFlag   = errors.New("dd progress flag must be set")
	ErrInvalidGracePeriod    = errors.New("grace period must not be negative")
	ErrInvalidDisplayStyle   = errors.New("display style must be one of: live, bar")
	ErrInvalidDiagnosticRows = errors.New("diagnostic lines must be at least 1")
	ErrInvalidColorMode      = errors.New("color must be one of: auto, always, never")
	ErrInvalidLogLevel       = errors.New("log level must be one of: debug, info, warn, error")
)

// Display styles
const (
	StyleLive = "live"
	StyleBar  = "bar"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all application configuration
type Config struct {
	DD      DDConfig      `mapstructure:"dd"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// DDConfig controls how the dd subprocess is launched
type DDConfig struct {
	Path         string        `mapstructure:"path"`
	ProgressFlag string        `mapstructure:"progress_flag"`
	GracePeriod  time.Duration `mapstructure:"grace_period"` // How long dd gets to fail before the live display starts
}

// DisplayConfig holds terminal output settings
type DisplayConfig struct {
	Style           string `mapstructure:"style"`
	DiagnosticLines int    `mapstructure:"diagnostic_lines"`
	Color           string `mapstructure:"color"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		DD: DDConfig{
			Path:         "dd",
			ProgressFlag: "status=progress",
			GracePeriod:  time.Second,
		},
		Display: DisplayConfig{
			Style:           StyleLive,
			DiagnosticLines: 5,
			Color:           ColorAuto,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers the default configuration with v so that
// config files, environment variables and flags only override what they name
func SetDefaults(v *viper.Viper) {
	def := NewDefaultConfig()
	v.SetDefault("dd.path", def.DD.Path)
	v.SetDefault("dd.progress_flag", def.DD.ProgressFlag)
	v.SetDefault("dd.grace_period", def.DD.GracePeriod)
	v.SetDefault("display.style", def.Display.Style)
	v.SetDefault("display.diagnostic_lines", def.Display.DiagnosticLines)
	v.SetDefault("display.color", def.Display.Color)
	v.SetDefault("log.level", def.Log.Level)
}

// Load builds a Config from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.DD.Path == "" {
		return ErrInvalidDDPath
	}
	if c.DD.ProgressFlag == "" {
		return ErrInvalidProgressFlag
	}
	if c.DD.GracePeriod < 0 {
		return ErrInvalidGracePeriod
	}
	switch c.Display.Style {
	case StyleLive, StyleBar:
	default:
		return ErrInvalidDisplayStyle
	}
	if c.Display.DiagnosticLines < 1 {
		return ErrInvalidDiagnosticRows
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrInvalidColorMode
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
