package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
	"unicode/utf8"

	"ddr/internal/progress"
)

// DefaultMaxLineBytes bounds a single line read from dd
const DefaultMaxLineBytes = 1024 * 1024

// State of a Monitor
type State int

const (
	Starting State = iota
	Running
	Finished
	FailedEarly // dd exited inside the grace period, whatever its status
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case FailedEarly:
		return "failed early"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Display receives what dd reports while the copy is running
type Display interface {
	Start()
	Progress(report progress.Report)
	Diagnostic(line string)
	Finish()
}

// Options configures a Monitor
type Options struct {
	// GracePeriod is how long dd may take to fail before the display starts.
	GracePeriod time.Duration

	// Console receives dd's stderr verbatim when dd exits during the grace period.
	// Default: os.Stdout
	Console io.Writer

	// Logger receives warnings about unreadable output.
	// Default: slog.Default()
	Logger *slog.Logger

	// MaxLineBytes is the longest line accepted from dd.
	// Default: DefaultMaxLineBytes
	MaxLineBytes int
}

// Monitor owns the dd process for one transfer
type Monitor struct {
	cmd     *exec.Cmd
	display Display
	opts    Options
	state   State
	done    chan error
}

// New creates a monitor for cmd, which must not have been started yet.
// The monitor takes over cmd.Stderr.
func New(cmd *exec.Cmd, display Display, opts Options) *Monitor {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}

	return &Monitor{
		cmd:     cmd,
		display: display,
		opts:    opts,
		state:   Starting,
		done:    make(chan error, 1),
	}
}

// State reports where the monitor is in its lifecycle
func (m *Monitor) State() State {
	return m.state
}

// Run starts dd, follows it to completion and returns its exit status.
// The only error returned is a failure to spawn dd; everything after that
// is reflected in the exit status or logged.
func (m *Monitor) Run() (int, error) {
	stderr, err := m.start()
	if err != nil {
		return 0, err
	}
	defer stderr.Close()

	time.Sleep(m.opts.GracePeriod)
	select {
	case waitErr := <-m.done:
		m.state = FailedEarly
		if _, err := io.Copy(m.opts.Console, stderr); err != nil {
			m.opts.Logger.Warn("failed to read dd's stderr", "error", err)
		}
		return m.exitStatus(waitErr), nil
	default:
	}

	m.state = Running
	m.display.Start()
	m.drive(stderr)
	m.display.Finish()

	err = <-m.done
	m.state = Finished
	return m.exitStatus(err), nil
}

// start spawns dd with its stderr connected to a pipe only this process reads.
// Wait runs on its own goroutine so the grace-period check can poll it.
func (m *Monitor) start() (*os.File, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe for dd: %w", err)
	}
	m.cmd.Stderr = pw

	if err := m.cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, fmt.Errorf("failed to spawn dd: %w", err)
	}
	// The child holds its own copy; ours must go for EOF to arrive.
	pw.Close()

	go func() {
		m.done <- m.cmd.Wait()
	}()
	return pr, nil
}

// drive reads dd's output until end of stream
func (m *Monitor) drive(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, m.opts.MaxLineBytes)), m.opts.MaxLineBytes)
	scanner.Split(ScanTerminalLines)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !utf8.Valid(line) {
			m.opts.Logger.Warn("failed to read output from dd", "error", "invalid UTF-8")
			continue
		}

		text := string(line)
		if report, ok := progress.Parse(text); ok {
			m.display.Progress(report)
		} else {
			m.display.Diagnostic(text)
		}
	}

	if err := scanner.Err(); err != nil {
		m.opts.Logger.Warn("failed to read output from dd", "error", err)
		// Keep the pipe empty so dd can finish
		if _, err := io.Copy(io.Discard, r); err != nil {
			m.opts.Logger.Warn("failed to drain dd's stderr", "error", err)
		}
	}
}

func (m *Monitor) exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		m.opts.Logger.Warn("dd was terminated by a signal", "status", exitErr.String())
		return 1
	}
	m.opts.Logger.Warn("failed to wait for dd", "error", err)
	return 1
}
