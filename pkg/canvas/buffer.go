package canvas

import "strings"

// Buffer is an in-memory Canvas. Tests and the dashboard view render into
// it and read the result back as plain text; ANSI escapes are stripped on
// write so cell contents stay one rune per column.
type Buffer struct {
	width  int
	height int
	cells  [][]rune
	x, y   int
}

// NewBuffer creates a buffer canvas filled with spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for i := range cells {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		cells[i] = row
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// MoveTo positions the write cursor. Out-of-range positions are kept as-is
// and clamped at write time, matching a terminal's behavior of dropping
// output past the edge rather than erroring.
func (b *Buffer) MoveTo(x, y int) {
	b.x = x
	b.y = y
}

// Write stores text at the cursor, advancing it. Escape sequences are
// discarded; writes past the right edge or below the bottom are dropped.
// Newlines move the cursor instead of occupying a cell.
func (b *Buffer) Write(s string) {
	for _, r := range stripEscapes(s) {
		switch r {
		case '\n':
			b.x = 0
			b.y++
		case '\r':
			b.x = 0
		default:
			if b.y >= 0 && b.y < b.height && b.x >= 0 && b.x < b.width {
				b.cells[b.y][b.x] = r
			}
			b.x++
		}
	}
}

// Line returns row y as a string, or "" when out of range.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return string(b.cells[y])
}

// String renders the whole buffer, one line per row, trailing spaces
// trimmed per line.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for i, row := range b.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// stripEscapes removes ANSI escape sequences terminated by 'm' (SGR), the
// only kind the grid embeds in written text.
func stripEscapes(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			out.WriteRune(r)
		}
	}
	return out.String()
}
