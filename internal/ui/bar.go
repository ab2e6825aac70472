package ui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"

	"ddr/internal/progress"
	"ddr/pkg/utils"
)

// BarDisplay shows dd's progress as a single progress bar.
// Diagnostic lines are printed above the bar and scroll normally.
type BarDisplay struct {
	bar    *progressbar.ProgressBar
	w      io.Writer
	logger *slog.Logger
}

// NewBarDisplay creates a bar for a transfer of totalBytes. An unknown size
// (0, as reported for block devices) gives a spinner instead.
func NewBarDisplay(w io.Writer, totalBytes uint64, logger *slog.Logger) *BarDisplay {
	if logger == nil {
		logger = slog.Default()
	}
	size := int64(-1)
	if totalBytes > 0 {
		size = int64(totalBytes)
	}

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription("Copying"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetPredictTime(false),
	)

	return &BarDisplay{bar: bar, w: w, logger: logger}
}

// Start draws the empty bar
func (b *BarDisplay) Start() {
	if err := b.bar.RenderBlank(); err != nil {
		b.logger.Warn("failed to draw progress", "error", err)
	}
}

// Progress moves the bar to the reported byte count
func (b *BarDisplay) Progress(report progress.Report) {
	b.bar.Describe(fmt.Sprintf("Copying (%s secs, %s)", utils.FormatSeconds(report.Elapsed), report.Throughput))
	if err := b.bar.Set64(int64(report.Bytes)); err != nil {
		// dd may copy more than the size measured up front
		b.logger.Debug("progress beyond expected size", "bytes", report.Bytes, "error", err)
	}
}

// Diagnostic prints line above the bar
func (b *BarDisplay) Diagnostic(line string) {
	if err := b.bar.Clear(); err != nil {
		b.logger.Warn("failed to clear progress bar", "error", err)
	}
	if _, err := fmt.Fprintln(b.w, line); err != nil {
		b.logger.Warn("failed to print dd output", "error", err)
	}
	if err := b.bar.RenderBlank(); err != nil {
		b.logger.Warn("failed to draw progress", "error", err)
	}
}

// Finish completes the bar and ends its line
func (b *BarDisplay) Finish() {
	if err := b.bar.Finish(); err != nil {
		b.logger.Warn("failed to finish progress bar", "error", err)
	}
	fmt.Fprintln(b.w)
}
