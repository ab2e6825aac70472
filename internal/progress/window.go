package progress

import "iter"

// DefaultWindowSize is how many diagnostic lines stay visible under the progress block
const DefaultWindowSize = 5

// Window keeps the most recent lines that were not progress reports.
// It is a fixed-capacity FIFO: once full, every Push drops the oldest line.
type Window struct {
	lines []string
	head  int // index of the oldest line once the window is full
	size  int
}

// NewWindow creates a window holding at most capacity lines (minimum 1)
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{lines: make([]string, capacity)}
}

// Push appends line, evicting the oldest line first if the window is full
func (w *Window) Push(line string) {
	if w.size < len(w.lines) {
		w.lines[(w.head+w.size)%len(w.lines)] = line
		w.size++
		return
	}
	w.lines[w.head] = line
	w.head = (w.head + 1) % len(w.lines)
}

// Len returns the number of buffered lines
func (w *Window) Len() int {
	return w.size
}

// Cap returns the window capacity
func (w *Window) Cap() int {
	return len(w.lines)
}

// All yields the buffered lines oldest first
func (w *Window) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < w.size; i++ {
			if !yield(w.lines[(w.head+i)%len(w.lines)]) {
				return
			}
		}
	}
}

// Lines returns a copy of the buffered lines, oldest first
func (w *Window) Lines() []string {
	out := make([]string, 0, w.size)
	for line := range w.All() {
		out = append(out, line)
	}
	return out
}
