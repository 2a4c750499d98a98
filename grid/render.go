package grid

import (
	"fmt"

	"github.com/dkoosis/browsergrid/internal/design"
	"github.com/dkoosis/browsergrid/pkg/canvas"
)

// Status keys for symbol and color configuration.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusNone  = "none"
)

// Styles maps the three status keys to a display symbol and an ANSI
// foreground color code. Symbol and color are always selected by the same
// rule, so they can never disagree for a target.
type Styles struct {
	Symbols map[string]string
	Colors  map[string]int
}

// DefaultStyles returns the stock symbols and colors: green check, red
// cross, blank/default for not-yet-ended targets.
func DefaultStyles() Styles {
	return Styles{
		Symbols: map[string]string{
			StatusOK:    "✓",
			StatusError: "✖",
			StatusNone:  " ",
		},
		Colors: map[string]int{
			StatusOK:    32,
			StatusError: 31,
			StatusNone:  0,
		},
	}
}

// Merge overlays non-empty entries from o. Only the three known keys are
// consulted; anything else in o is ignored.
func (s Styles) Merge(o Styles) Styles {
	for _, key := range []string{StatusOK, StatusError, StatusNone} {
		if sym, ok := o.Symbols[key]; ok {
			s.Symbols[key] = sym
		}
		if col, ok := o.Colors[key]; ok {
			s.Colors[key] = col
		}
	}
	return s
}

// statusFor maps a target's state to a status key. Failed (externally or
// by failing results) beats everything; a target that hasn't ended shows
// the neutral symbol; an ended target with clean results shows ok.
func statusFor(t *Target) string {
	switch {
	case t.Failed():
		return StatusError
	case t.State != StateEnded:
		return StatusNone
	default:
		return StatusOK
	}
}

// Renderer draws the full target grid onto a canvas. The cell width is
// fixed at construction from the complete target set and never changes, so
// redraws always fully overwrite the previous frame.
type Renderer struct {
	styles    Styles
	cellWidth int
}

// NewRenderer creates a renderer sized for the given target set.
func NewRenderer(targets []*Target, styles Styles) *Renderer {
	return &Renderer{styles: styles, cellWidth: CellWidth(targets)}
}

// CellWidth returns the fixed uniform column width.
func (r *Renderer) CellWidth() int {
	return r.cellWidth
}

// Render lays the targets out for the canvas width and draws every cell:
// padded label, a space, the colored status symbol, and the platform on
// the row below. Both rows are right-padded past their content so stale
// characters from the previous frame are overwritten.
func (r *Renderer) Render(targets []*Target, cv canvas.Canvas, canvasWidth int) {
	for _, cell := range Layout(targets, r.cellWidth, canvasWidth) {
		t := cell.Target
		status := statusFor(t)
		symbol := canvas.Colorize(r.styles.Symbols[status], r.styles.Colors[status])

		cv.MoveTo(cell.X, cell.Y)
		cv.Write(fmt.Sprintf("%s %s", design.PadRight(t.Label(), r.cellWidth), symbol))
		cv.MoveTo(cell.X, cell.Y+1)
		cv.Write(design.PadRight(t.Platform, r.cellWidth+2))
	}
	cv.Write("\n")
}
