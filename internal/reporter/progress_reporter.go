package reporter

import (
	"log/slog"
	"time"

	"ddr/internal/monitor"
	"ddr/internal/progress"
)

// ProgressReporter forwards updates to a display and logs a summary of the
// transfer once the display finishes
type ProgressReporter struct {
	next        monitor.Display
	logger      *slog.Logger
	totalBytes  uint64
	last        progress.Report
	updates     int
	diagnostics int
	startTime   time.Time
}

// NewProgressReporter wraps next
func NewProgressReporter(next monitor.Display, totalBytes uint64, logger *slog.Logger) *ProgressReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressReporter{next: next, logger: logger, totalBytes: totalBytes}
}

func (pr *ProgressReporter) Start() {
	pr.startTime = time.Now()
	pr.next.Start()
}

func (pr *ProgressReporter) Progress(report progress.Report) {
	pr.last = report
	pr.updates++
	pr.next.Progress(report)
}

func (pr *ProgressReporter) Diagnostic(line string) {
	pr.diagnostics++
	pr.next.Diagnostic(line)
}

func (pr *ProgressReporter) Finish() {
	pr.next.Finish()

	attrs := []any{
		"bytes", pr.last.Bytes,
		"total_bytes", pr.totalBytes,
		"dd_elapsed_secs", pr.last.Elapsed,
		"throughput", pr.last.Throughput,
		"progress_lines", pr.updates,
		"other_lines", pr.diagnostics,
		"wall_time", time.Since(pr.startTime).Round(time.Millisecond),
	}
	if ratio, ok := pr.last.Ratio(pr.totalBytes); ok {
		attrs = append(attrs, "ratio", ratio)
	}
	pr.logger.Info("transfer finished", attrs...)
}
