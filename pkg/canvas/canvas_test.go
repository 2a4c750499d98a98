package canvas

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		color int
		want  string
	}{
		{"red", "✖", 31, "\033[31m✖\033[0m"},
		{"green", "✓", 32, "\033[32m✓\033[0m"},
		{"default passes through", " ", 0, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorize(tt.text, tt.color); got != tt.want {
				t.Errorf("Colorize(%q, %d) = %q, want %q", tt.text, tt.color, got, tt.want)
			}
		})
	}
}

func TestTerm_MoveToEmitsOneBasedAddressing(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, 80, 24)

	term.MoveTo(4, 3)
	term.Write("Chrome 70")

	out := buf.String()
	if !strings.HasPrefix(out, "\033[4;5H") {
		t.Errorf("MoveTo(4, 3) emitted %q, want prefix ESC[4;5H", out)
	}
	if !strings.HasSuffix(out, "Chrome 70") {
		t.Errorf("Write passed text through as %q", out)
	}
}

func TestTerm_ClampsNegativeCoordinates(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, 80, 24)
	term.MoveTo(-3, -1)
	if got := buf.String(); got != "\033[1;1H" {
		t.Errorf("MoveTo(-3, -1) emitted %q, want ESC[1;1H", got)
	}
}

func TestTerm_DefaultsDimensions(t *testing.T) {
	term := NewTerm(&bytes.Buffer{}, 0, -1)
	w, h := term.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = %d×%d, want 80×24", w, h)
	}
}

func TestBuffer_WritesAtCursor(t *testing.T) {
	buf := NewBuffer(20, 5)
	buf.MoveTo(4, 3)
	buf.Write("hello")

	if got := strings.TrimRight(buf.Line(3), " "); got != "    hello" {
		t.Errorf("Line(3) = %q", got)
	}
}

func TestBuffer_StripsColorEscapes(t *testing.T) {
	buf := NewBuffer(10, 2)
	buf.MoveTo(0, 0)
	buf.Write("\033[31m✖\033[0m ok")

	if got := strings.TrimRight(buf.Line(0), " "); got != "✖ ok" {
		t.Errorf("Line(0) = %q, want escape-free cells", got)
	}
}

func TestBuffer_DropsOutOfRangeWrites(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.MoveTo(3, 0)
	buf.Write("abcdef") // runs past the right edge
	buf.MoveTo(0, 9)
	buf.Write("below") // below the bottom

	if got := buf.Line(0); got != "   ab" {
		t.Errorf("Line(0) = %q, want %q", got, "   ab")
	}
	if got := strings.TrimSpace(buf.Line(1)); got != "" {
		t.Errorf("Line(1) = %q, want empty", got)
	}
}

func TestBuffer_NewlineMovesCursorWithoutFillingACell(t *testing.T) {
	buf := NewBuffer(10, 3)
	buf.MoveTo(2, 0)
	buf.Write("ab\ncd")

	if got := strings.TrimRight(buf.Line(0), " "); got != "  ab" {
		t.Errorf("Line(0) = %q, want %q", got, "  ab")
	}
	if got := strings.TrimRight(buf.Line(1), " "); got != "cd" {
		t.Errorf("Line(1) = %q, want %q", got, "cd")
	}
	if strings.ContainsRune(buf.String(), '\r') || strings.Contains(buf.Line(0), "\n") {
		t.Errorf("control runes leaked into cells: %q", buf.Line(0))
	}
}

func TestBuffer_CarriageReturnRewindsTheLine(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.Write("aaaa\rbb")

	if got := strings.TrimRight(buf.Line(0), " "); got != "bbaa" {
		t.Errorf("Line(0) = %q, want %q", got, "bbaa")
	}
}

func TestBuffer_StringTrimsTrailingSpace(t *testing.T) {
	buf := NewBuffer(10, 2)
	buf.MoveTo(0, 0)
	buf.Write("hi")

	if got := buf.String(); got != "hi\n" {
		t.Errorf("String() = %q", got)
	}
}
