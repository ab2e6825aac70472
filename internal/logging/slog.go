package logging

import (
	"io"
	"log/slog"
	"strings"

	"ddr/internal/config"
)

// New builds the application logger.
//
// Records are written as text with the time attribute dropped: the output
// shares a terminal with the progress display and timestamps only add noise.
// Every record carries app=ddr so interleaved dd output is easy to tell apart.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler).With(slog.String("app", "ddr"))
}

// Init configures the default slog logger and returns it
func Init(cfg config.LogConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a configured level name to a slog level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
