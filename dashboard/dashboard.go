// Package dashboard hosts the browser grid in a live terminal UI. Events
// arrive on a channel, are applied to the display one at a time by the
// bubbletea loop, and every frame re-renders the full grid into an
// off-screen buffer.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/browsergrid/grid"
	"github.com/dkoosis/browsergrid/internal/design"
	"github.com/dkoosis/browsergrid/pkg/canvas"
	"github.com/dkoosis/browsergrid/pkg/events"
)

// Run drives the dashboard until the event channel closes and the user
// quits (or ctx is cancelled). Returns the collected failure reports.
func Run(ctx context.Context, display *grid.Display, eventCh <-chan events.Event, theme *design.Theme) ([]grid.FailureReport, error) {
	program := tea.NewProgram(newModel(display, eventCh, theme), tea.WithContext(ctx), tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}
	m := finalModel.(model)
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	if !m.done {
		return nil, fmt.Errorf("interrupted before the event stream ended")
	}
	return m.reports, nil
}

type eventMsg events.Event
type streamDoneMsg struct{}

type model struct {
	display  *grid.Display
	eventCh  <-chan events.Event
	theme    *design.Theme
	buffer   *canvas.Buffer
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	done     bool

	reports   []grid.FailureReport
	reportErr error
}

func newModel(display *grid.Display, eventCh <-chan events.Event, theme *design.Theme) model {
	vp := viewport.New(0, 0)
	return model{display: display, eventCh: eventCh, theme: theme, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return m.listenEvents()
}

func (m model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.eventCh
		if !ok {
			return streamDoneMsg{}
		}
		return eventMsg(e)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.done || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "up", "k", "down", "j", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buffer = canvas.NewBuffer(m.width, m.gridHeight())
		m.display.SetCanvas(m.buffer)
		m.display.Resize(m.width, m.gridHeight())
		m.display.Render()
		m.viewport.Width = m.width - 2
		m.viewport.Height = m.reportHeight()
		m.ready = true

	case eventMsg:
		// One event fully processed, then one redraw. The bubbletea loop
		// serializes messages, so the display always renders a settled
		// snapshot.
		events.Apply(events.Event(msg), m.display)
		return m, m.listenEvents()

	case streamDoneMsg:
		m.done = true
		m.reports, m.reportErr = grid.CollectFailures(m.display.Targets())
		m.viewport.SetContent(m.reportContent())
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Waiting for terminal size..."
	}

	header := m.theme.Header.Render("browsergrid")
	body := m.buffer.String()

	if !m.done {
		help := m.theme.Subtle.Render("waiting for events • ctrl+c abort")
		return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
	}

	help := m.theme.Subtle.Render("↑/↓ scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewport.View(), help)
}

func (m model) reportContent() string {
	if m.reportErr != nil {
		return m.theme.Error.Render(fmt.Sprintf("report error: %v", m.reportErr))
	}
	var sb strings.Builder
	grid.WriteReport(&sb, m.reports, m.theme)

	// Long trace lines would make the viewport soft-wrap and throw off
	// its line accounting; clip each line to the pane width instead.
	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = design.TruncateToWidth(line, m.viewport.Width)
	}
	return strings.Join(lines, "\n")
}

// gridHeight reserves the lower third of the screen for the report pane.
func (m model) gridHeight() int {
	h := m.height - m.reportHeight() - 2
	if h < 6 {
		h = 6
	}
	return h
}

func (m model) reportHeight() int {
	h := m.height / 3
	if h < 4 {
		h = 4
	}
	return h
}
