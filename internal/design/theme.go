package design

import "github.com/charmbracelet/lipgloss"

// Theme defines the lipgloss styles for everything drawn outside the grid
// itself: report headers, failure sections, dashboard chrome. The grid's
// status symbols use plain ANSI color codes instead — that mapping is
// runtime configuration, not theming, and lives with the renderer.
type Theme struct {
	Name string

	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:    "default",
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// MonoTheme returns an uncolored theme for dumb terminals and piped
// output.
func MonoTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Name:    "mono",
		Header:  plain.Bold(true),
		Success: plain,
		Error:   plain,
		Muted:   plain,
		Subtle:  plain,
	}
}

// ThemeByName resolves a theme name, falling back to the default.
func ThemeByName(name string) *Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
