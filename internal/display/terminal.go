package display

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal escape sequences
const (
	CursorHome  = "\x1b[1;1H"
	ResetScreen = "\x1bc"
	CursorHide  = "\x1b[?25l"
	CursorShow  = "\x1b[?25h"
)

const exitHint = "\nCTRL-C to exit"

// Terminal emulates a matrix as block characters in a terminal
type Terminal struct {
	*Framebuffer

	out     io.Writer
	fd      int
	narrow  bool
	noColor bool
	log     logr.Logger

	resized chan os.Signal
	warned  bool
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithOutput writes frames to w instead of stdout
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.out = w
		t.fd = -1
		if f, ok := w.(*os.File); ok {
			t.fd = int(f.Fd())
		}
	}
}

// WithNarrow draws each pixel as one character instead of two
func WithNarrow(narrow bool) TerminalOption {
	return func(t *Terminal) {
		t.narrow = narrow
	}
}

// WithNoColor draws lit pixels without colour escapes
func WithNoColor(noColor bool) TerminalOption {
	return func(t *Terminal) {
		t.noColor = noColor
	}
}

// WithTerminalLogger sets the logger used for size warnings
func WithTerminalLogger(log logr.Logger) TerminalOption {
	return func(t *Terminal) {
		t.log = log
	}
}

// NewTerminal creates a terminal display of rows x cols pixels
func NewTerminal(rows, cols int, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		Framebuffer: NewFramebuffer(rows, cols),
		out:         os.Stdout,
		fd:          int(os.Stdout.Fd()),
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.isTerminal() {
		t.resized = make(chan os.Signal, 1)
		signal.Notify(t.resized, unix.SIGWINCH)
	}
	return t
}

func (t *Terminal) isTerminal() bool {
	return t.fd >= 0 && isatty.IsTerminal(uintptr(t.fd))
}

// Show redraws the matrix from the top left of the terminal
func (t *Terminal) Show() error {
	t.checkSize()
	return t.Draw(true)
}

// Draw writes the matrix. With moveCursor the cursor is first moved to the
// top left and an exit hint follows the frame.
func (t *Terminal) Draw(moveCursor bool) error {
	var b strings.Builder
	if moveCursor {
		b.WriteString(CursorHome + "\n")
	}

	on, off := "██", "  "
	if t.narrow {
		on, off = "█", " "
	}
	b.WriteString(t.Frame().Render(!t.noColor, on, off))
	b.WriteString("\n")

	if moveCursor {
		b.WriteString(exitHint + "\n")
	}

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// checkSize clears the screen after a resize and warns once when the
// terminal is too small to hold a frame.
func (t *Terminal) checkSize() {
	if t.resized == nil {
		return
	}

	select {
	case <-t.resized:
		t.warned = false
		if err := t.ClearScreen(); err != nil {
			t.log.Error(err, "Failed to clear screen")
		}
	default:
	}

	if t.warned {
		return
	}
	width, height, err := term.GetSize(t.fd)
	if err != nil {
		return
	}
	rows, cols := t.rows, t.cols
	perPixel := 2
	if t.narrow {
		perPixel = 1
	}
	// frame plus brackets, cursor line and exit hint
	needWidth, needHeight := cols*perPixel+2, rows+4
	if width < needWidth || height < needHeight {
		t.log.Info("Terminal is too small for the display",
			"have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needWidth, needHeight))
		t.warned = true
	}
}

// ClearScreen resets the terminal
func (t *Terminal) ClearScreen() error {
	_, err := io.WriteString(t.out, ResetScreen+"\n")
	return err
}

// HideCursor hides the terminal cursor
func (t *Terminal) HideCursor() error {
	_, err := io.WriteString(t.out, CursorHide+"\n")
	return err
}

// ShowCursor shows the terminal cursor
func (t *Terminal) ShowCursor() error {
	_, err := io.WriteString(t.out, CursorShow+"\n")
	return err
}

// Close restores the cursor and stops watching for resizes
func (t *Terminal) Close() error {
	if t.resized != nil {
		signal.Stop(t.resized)
	}
	return t.ShowCursor()
}
