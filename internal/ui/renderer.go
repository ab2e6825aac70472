package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mitchellh/colorstring"
)

// Color is a foreground colour name understood by colorstring
type Color string

// ColorProgress is used for the progress block
const ColorProgress Color = "cyan"

// Renderer writes to a terminal through a buffer so each frame reaches the
// screen in a single flush. It only knows about cursor movement and colour.
type Renderer struct {
	w        io.Writer
	out      *bufio.Writer
	colorize *colorstring.Colorize
}

// NewRenderer creates a renderer over w; colour escapes are only emitted when color is true
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{
		w:   w,
		out: bufio.NewWriter(w),
		colorize: &colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
		},
	}
}

// Up moves the cursor up by rows lines
func (r *Renderer) Up(rows int) {
	if rows > 0 {
		fmt.Fprintf(r.out, "\x1b[%dA", rows)
	}
}

// Down moves the cursor down by rows lines
func (r *Renderer) Down(rows int) {
	if rows > 0 {
		fmt.Fprintf(r.out, "\x1b[%dB", rows)
	}
}

// SetColor switches the foreground colour for everything printed after it
func (r *Renderer) SetColor(c Color) {
	r.out.WriteString(r.colorize.Color("[" + string(c) + "]"))
}

// ResetColor restores the terminal's default attributes
func (r *Renderer) ResetColor() {
	r.out.WriteString(r.colorize.Color("[reset]"))
}

// Println overwrites the current row with line and moves to the next one
func (r *Renderer) Println(line string) {
	r.out.WriteString("\r\x1b[2K")
	r.out.WriteString(line)
	r.out.WriteByte('\n')
}

// Flush sends the buffered frame to the terminal. On failure the frame is
// dropped so the next one starts from a clean buffer.
func (r *Renderer) Flush() error {
	if err := r.out.Flush(); err != nil {
		r.out.Reset(r.w)
		return err
	}
	return nil
}
