package ui

import (
	"os"

	"golang.org/x/term"

	"ddr/internal/config"
)

// ColorEnabled resolves a configured colour mode against the output file.
// "auto" enables colour only for terminals and honours NO_COLOR.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
