package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"ddr/internal/config"
	"ddr/internal/dd"
	"ddr/internal/monitor"
	"ddr/internal/reporter"
	"ddr/internal/ui"
	"ddr/pkg/utils"
)

// TransferOptions configures the transfer application behavior
type TransferOptions struct {
	Source      string   // Required: file or device to read
	Destination string   // Required: file or device to write
	ExtraArgs   []string // Passed to dd verbatim, after the generated arguments
}

// TransferSession holds everything known about one dd run
type TransferSession struct {
	Source      string
	Destination string
	TotalBytes  uint64 // Size of Source when the session was created
	Cmd         *exec.Cmd
}

// TransferApp copies a file with dd while showing its progress
type TransferApp struct {
	config  *config.Config
	logger  *slog.Logger
	console io.Writer
}

// NewTransferApp creates a new transfer application writing to console
func NewTransferApp(cfg *config.Config, logger *slog.Logger, console io.Writer) *TransferApp {
	if logger == nil {
		logger = slog.Default()
	}
	if console == nil {
		console = os.Stdout
	}
	return &TransferApp{
		config:  cfg,
		logger:  logger,
		console: console,
	}
}

// Run performs the transfer and returns dd's exit status.
// Errors are reserved for problems that stop dd from being started at all.
func (a *TransferApp) Run(ctx context.Context, opts *TransferOptions) (int, error) {
	if opts.Source == "" || opts.Destination == "" {
		return 0, fmt.Errorf("source and destination are required")
	}

	version, err := dd.ProbeVersion(ctx, a.config.DD.Path)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("found dd", "path", a.config.DD.Path, "version", version.String())

	fmt.Fprintf(a.console, "transferring `%s` to `%s`\n", opts.Source, opts.Destination)

	session, err := a.newSession(opts)
	if err != nil {
		return 0, err
	}

	mon := monitor.New(session.Cmd, a.newDisplay(session.TotalBytes), monitor.Options{
		GracePeriod: a.config.DD.GracePeriod,
		Console:     a.console,
		Logger:      a.logger,
	})
	code, err := mon.Run()
	if err != nil {
		return 0, err
	}

	a.logger.Debug("dd exited", "status", code, "state", mon.State().String())
	return code, nil
}

// Version renders the version lines for this program and the installed dd
func (a *TransferApp) Version(ctx context.Context, appVersion string) (string, error) {
	version, err := dd.ProbeVersion(ctx, a.config.DD.Path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ddr version %s\ndd version %s\n", appVersion, version), nil
}

// newSession measures the source and prepares dd; nothing is spawned yet
func (a *TransferApp) newSession(opts *TransferOptions) (*TransferSession, error) {
	total, err := utils.SourceSize(opts.Source)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("measured source", "path", opts.Source, "bytes", total)

	return &TransferSession{
		Source:      opts.Source,
		Destination: opts.Destination,
		TotalBytes:  total,
		Cmd:         dd.Command(a.config.DD, opts.Source, opts.Destination, opts.ExtraArgs),
	}, nil
}

// newDisplay picks the display configured for this run
func (a *TransferApp) newDisplay(totalBytes uint64) monitor.Display {
	var display monitor.Display
	if a.config.Display.Style == config.StyleBar {
		display = ui.NewBarDisplay(a.console, totalBytes, a.logger)
	} else {
		out, _ := a.console.(*os.File)
		renderer := ui.NewRenderer(a.console, ui.ColorEnabled(a.config.Display.Color, out))
		display = ui.NewLiveDisplay(renderer, totalBytes, a.config.Display.DiagnosticLines, a.logger)
	}
	return reporter.NewProgressReporter(display, totalBytes, a.logger)
}
