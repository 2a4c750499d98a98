// browsergrid renders a live status grid for cross-browser test runs.
//
// Usage:
//
//	test-orchestrator --report=ndjson | browsergrid -targets browsers.yaml
//
// Targets are declared once in a YAML file; lifecycle events (init, start,
// end, errored) arrive as NDJSON on stdin, one per line. With a TTY the
// grid runs inside a full-screen dashboard; -plain draws in place using
// cursor addressing instead. Piped output gets no escape sequences: the
// final grid and the failure report are printed once the stream ends.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/browsergrid/dashboard"
	"github.com/dkoosis/browsergrid/grid"
	"github.com/dkoosis/browsergrid/internal/config"
	"github.com/dkoosis/browsergrid/internal/design"
	"github.com/dkoosis/browsergrid/internal/version"
	"github.com/dkoosis/browsergrid/pkg/canvas"
	"github.com/dkoosis/browsergrid/pkg/events"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("browsergrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	targetsFlag := fs.String("targets", "", "YAML file declaring the browser targets (required)")
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	plainFlag := fs.Bool("plain", false, "Draw directly to the terminal instead of the dashboard")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if *targetsFlag == "" {
		fmt.Fprintln(stderr, "browsergrid: -targets is required")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "browsergrid: %v\n", err)
		return 2
	}

	specs, err := loadTargets(*targetsFlag)
	if err != nil {
		fmt.Fprintf(stderr, "browsergrid: %v\n", err)
		return 2
	}
	if len(specs) == 0 {
		fmt.Fprintf(stderr, "browsergrid: %s declares no targets\n", *targetsFlag)
		return 2
	}

	themeName := *themeFlag
	if themeName == "" {
		themeName = cfg.Theme
	}
	theme := design.ThemeByName(themeName)

	resolver := grid.NewResolver(
		config.MergeNames(grid.DefaultBrowserNames(), cfg.Browsers),
		config.MergeNames(grid.DefaultPlatformNames(), cfg.Platforms),
	)
	styles := grid.DefaultStyles().Merge(grid.Styles{Symbols: cfg.Symbols, Colors: cfg.Colors})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *plainFlag || !isTTYWriter(stdout) {
		return runPlain(ctx, stdin, stdout, stderr, specs, resolver, styles, theme)
	}
	return runDashboard(ctx, stdin, stdout, stderr, specs, resolver, styles, theme)
}

// runPlain draws the grid in place on the terminal and prints the failure
// report after the stream ends. When stdout is not a terminal there is
// nothing to draw in place on: events only update state, and the final
// grid is printed once, free of escape sequences.
func runPlain(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer,
	specs []grid.TargetSpec, resolver *grid.Resolver, styles grid.Styles, theme *design.Theme) int {

	width, height := termSize(stdout)
	live := isTTYWriter(stdout)

	var cv *canvas.Term
	var display *grid.Display
	if live {
		cv = canvas.NewTerm(stdout, width, height)
		display = grid.NewDisplay(specs, resolver, styles, cv)
		display.Resize(width, height)
		cv.HideCursor()
		defer cv.ShowCursor()
		cv.Clear()
		display.Render()
	} else {
		display = grid.NewDisplay(specs, resolver, styles, nil)
		display.Resize(width, height)
	}

	malformed, err := events.Stream(ctx, stdin, func(e events.Event) {
		events.Apply(e, display)
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(stderr, "browsergrid: reading events: %v\n", err)
		return 2
	}

	if live {
		// Park the cursor under the grid before printing the report.
		cv.MoveTo(0, reportRow(display, width))
		cv.ShowCursor()
	}

	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "browsergrid: interrupted")
		return 2
	}
	if malformed > 0 {
		fmt.Fprintf(stderr, "browsergrid: warning: %d malformed event line(s) skipped\n", malformed)
	}

	if !live {
		buf := canvas.NewBuffer(width, reportRow(display, width))
		display.SetCanvas(buf)
		display.Render()
		fmt.Fprintln(stdout, buf.String())
	}

	reports, err := grid.CollectFailures(display.Targets())
	if err != nil {
		fmt.Fprintf(stderr, "browsergrid: %v\n", err)
		return 2
	}
	grid.WriteReport(stdout, reports, theme)
	if len(reports) > 0 {
		return 1
	}
	return 0
}

// runDashboard hosts the grid in the bubbletea UI.
func runDashboard(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer,
	specs []grid.TargetSpec, resolver *grid.Resolver, styles grid.Styles, theme *design.Theme) int {

	display := grid.NewDisplay(specs, resolver, styles, nil)

	eventCh := make(chan events.Event)
	go func() {
		defer close(eventCh)
		_, _ = events.Stream(ctx, stdin, func(e events.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
	}()

	reports, err := dashboard.Run(ctx, display, eventCh, theme)
	if err != nil {
		fmt.Fprintf(stderr, "browsergrid: %v\n", err)
		return 2
	}
	grid.WriteReport(stdout, reports, theme)
	if len(reports) > 0 {
		return 1
	}
	return 0
}

// targetsFile is the on-disk shape of the -targets YAML.
type targetsFile struct {
	Targets []grid.TargetSpec `yaml:"targets"`
}

func loadTargets(path string) ([]grid.TargetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets: %w", err)
	}
	var tf targetsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, t := range tf.Targets {
		if t.Name == "" || t.Platform == "" {
			return nil, fmt.Errorf("%s: every target needs a name and a platform", path)
		}
	}
	return tf.Targets, nil
}

// reportRow returns the first free row below the laid-out grid.
func reportRow(d *grid.Display, width int) int {
	row := 0
	for _, cell := range grid.Layout(d.Targets(), d.CellWidth(), width) {
		if cell.Y+2 > row {
			row = cell.Y + 2
		}
	}
	return row + 1
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
