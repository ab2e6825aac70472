package dd

import (
	"os/exec"

	"ddr/internal/config"
)

// Args returns the dd argument list for copying source to destination.
// extra is appended verbatim; it is whatever the user put after "--".
func Args(cfg config.DDConfig, source, destination string, extra []string) []string {
	args := make([]string, 0, 3+len(extra))
	args = append(args, cfg.ProgressFlag, "if="+source, "of="+destination)
	return append(args, extra...)
}

// Command prepares, but does not start, the dd process
func Command(cfg config.DDConfig, source, destination string, extra []string) *exec.Cmd {
	return exec.Command(cfg.Path, Args(cfg, source, destination, extra)...)
}
