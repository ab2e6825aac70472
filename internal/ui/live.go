package ui

import (
	"fmt"
	"log/slog"

	"ddr/internal/progress"
	"ddr/pkg/utils"
)

// progressRows is the height of the progress block
const progressRows = 2

// LiveDisplay repaints a fixed region of the terminal on every update:
// two coloured progress rows followed by the most recent diagnostic lines.
//
// Between frames the cursor rests on the first row under the progress block,
// so each update moves up over the block, redraws it and everything below,
// then moves back up instead of scrolling the terminal.
type LiveDisplay struct {
	r          *Renderer
	window     *progress.Window
	totalBytes uint64
	totalSize  string
	logger     *slog.Logger
}

// NewLiveDisplay creates a display for a transfer of totalBytes that keeps
// the last lines diagnostic lines visible
func NewLiveDisplay(r *Renderer, totalBytes uint64, lines int, logger *slog.Logger) *LiveDisplay {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveDisplay{
		r:          r,
		window:     progress.NewWindow(lines),
		totalBytes: totalBytes,
		totalSize:  utils.FormatFileSize(totalBytes),
		logger:     logger,
	}
}

// Start reserves the rows of the progress block
func (d *LiveDisplay) Start() {
	for range progressRows {
		d.r.Println("")
	}
	d.flush()
}

// Progress redraws the progress block from report, then the diagnostic lines
func (d *LiveDisplay) Progress(report progress.Report) {
	d.r.Up(progressRows)
	d.r.SetColor(ColorProgress)
	d.r.Println(fmt.Sprintf(" %s / %s (%s)",
		utils.FormatFileSize(report.Bytes),
		d.totalSize,
		utils.FormatRatio(report.Ratio(d.totalBytes))))
	d.r.Println(fmt.Sprintf(" %s secs, %s", utils.FormatSeconds(report.Elapsed), report.Throughput))
	d.r.ResetColor()
	d.redrawDiagnostics()
}

// Diagnostic records a non-progress line and redraws the lines under the
// unchanged progress block
func (d *LiveDisplay) Diagnostic(line string) {
	d.window.Push(line)
	d.redrawDiagnostics()
}

// Finish leaves the cursor under the diagnostic lines so later output does
// not overwrite them
func (d *LiveDisplay) Finish() {
	d.r.Down(d.window.Len())
	d.flush()
}

func (d *LiveDisplay) redrawDiagnostics() {
	for line := range d.window.All() {
		d.r.Println(line)
	}
	d.r.Up(d.window.Len())
	d.flush()
}

func (d *LiveDisplay) flush() {
	if err := d.r.Flush(); err != nil {
		d.logger.Warn("failed to draw progress", "error", err)
	}
}
