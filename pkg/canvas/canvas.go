// Package canvas provides the drawing surface the grid renders onto.
//
// The core emits only two operations — move the cursor, write text — and
// never reads back. Terminal protocol details (cursor addressing, SGR color
// escapes) live entirely in this package; the grid deals in plain text and
// semantic color codes.
package canvas

import "fmt"

// Canvas is a positional text surface. Coordinates are 0-based with the
// origin at the top-left. Write renders at the current cursor position and
// advances it; implementations pass embedded escape sequences through
// verbatim.
type Canvas interface {
	MoveTo(x, y int)
	Write(s string)
}

// Colorize wraps s in an ANSI SGR foreground escape for the given color
// code. Code 0 means "default color" and returns s unchanged, so callers
// can thread color codes through without special-casing the neutral state.
func Colorize(s string, color int) string {
	if color == 0 {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}
