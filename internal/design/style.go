// Package design holds the visual theme and width-aware text helpers
// shared by the grid renderer, the failure report printer and the
// dashboard.
package design

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PadRight pads a string to the specified visual width, using spaces.
// Width is measured in terminal cells, so wide runes and emoji pad
// correctly where fmt.Sprintf("%-*s", …) would not.
func PadRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// TruncateToWidth truncates a string to fit within the specified visual
// width. Whole runes are preserved and ANSI escape sequences pass through
// uncounted, so truncating a styled line never splits an escape.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth < 0 {
		maxWidth = 0
	}
	return ansi.Truncate(s, maxWidth, "")
}
