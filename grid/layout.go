package grid

import "github.com/mattn/go-runewidth"

// Layout geometry. Cells start at a fixed margin; each occupies two rows
// (label, platform) followed by a blank separator row, so wrapping steps y
// by three. The right margin keeps the status symbol clear of the edge.
const (
	marginX  = 4
	marginY  = 3
	rowStep  = 3
	gutter   = 6
	rightPad = 5
)

// Cell is one target's position in the grid.
type Cell struct {
	Target *Target
	X, Y   int
}

// CellWidth computes the uniform column width for a target set: the widest
// of every target's label ("name version") and platform, measured in
// terminal cells. An empty set yields 0.
func CellWidth(targets []*Target) int {
	max := 0
	for _, t := range targets {
		if w := runewidth.StringWidth(t.Name) + runewidth.StringWidth(t.Version) + 1; w > max {
			max = w
		}
		if w := runewidth.StringWidth(t.Platform); w > max {
			max = w
		}
	}
	return max
}

// Layout places targets in row-major order, wrapping to a new cell row
// whenever the next cell would cross the right margin. Placement depends
// only on target order, cellWidth and canvasWidth, so repeated calls on
// the same inputs yield identical positions. This is deliberately not a
// packing layout; determinism wins over density.
func Layout(targets []*Target, cellWidth, canvasWidth int) []Cell {
	if len(targets) == 0 {
		return nil
	}
	cells := make([]Cell, 0, len(targets))
	x, y := marginX, marginY
	for _, t := range targets {
		if x+cellWidth > canvasWidth-rightPad {
			y += rowStep
			x = marginX
		}
		cells = append(cells, Cell{Target: t, X: x, Y: y})
		x += cellWidth + gutter
	}
	return cells
}
