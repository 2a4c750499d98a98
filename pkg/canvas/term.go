package canvas

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Term is a Canvas backed by a real terminal (or any ANSI-capable writer).
// MoveTo uses absolute cursor addressing, so redraws land on top of the
// previous frame instead of scrolling.
type Term struct {
	out          io.Writer
	width        int
	height       int
	isTTY        bool
	cursorHidden bool
}

// NewTerm creates a terminal canvas of the given dimensions.
func NewTerm(out io.Writer, width, height int) *Term {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Term{out: out, width: width, height: height, isTTY: isTTY}
}

// Size returns the canvas dimensions.
func (t *Term) Size() (width, height int) {
	return t.width, t.height
}

// Resize updates the canvas dimensions. Callers re-render after resizing.
func (t *Term) Resize(width, height int) {
	if width > 0 {
		t.width = width
	}
	if height > 0 {
		t.height = height
	}
}

// MoveTo positions the cursor. ANSI addressing is 1-based; grid
// coordinates are 0-based, translated here.
func (t *Term) MoveTo(x, y int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	_, _ = fmt.Fprintf(t.out, "\033[%d;%dH", y+1, x+1)
}

// Write emits text at the current cursor position. Escape sequences pass
// through verbatim.
func (t *Term) Write(s string) {
	_, _ = fmt.Fprint(t.out, s)
}

// Clear erases the screen and homes the cursor.
func (t *Term) Clear() {
	_, _ = fmt.Fprint(t.out, "\033[2J\033[H")
}

// HideCursor suppresses the cursor to reduce visual noise during redraws.
// No-op when the writer is not a TTY.
func (t *Term) HideCursor() {
	if t.isTTY && !t.cursorHidden {
		_, _ = fmt.Fprint(t.out, "\033[?25l")
		t.cursorHidden = true
	}
}

// ShowCursor restores the cursor after HideCursor.
func (t *Term) ShowCursor() {
	if t.cursorHidden {
		_, _ = fmt.Fprint(t.out, "\033[?25h")
		t.cursorHidden = false
	}
}

// IsTTY reports whether the underlying writer supports cursor control.
func (t *Term) IsTTY() bool {
	return t.isTTY
}
