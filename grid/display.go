package grid

import (
	"sync"

	"golang.org/x/text/cases"

	"github.com/dkoosis/browsergrid/pkg/canvas"
)

// Display owns the target set and is the only way external code mutates
// it. Every lifecycle entry point transitions exactly one target (or, for
// MarkAsFailed, the matching set) and then redraws the whole grid, so the
// surface always reflects a consistent snapshot.
//
// Event delivery is expected one at a time; the mutex extends that
// guarantee to hosts that deliver from multiple goroutines.
type Display struct {
	mu       sync.Mutex
	targets  []*Target
	resolver *Resolver
	renderer *Renderer
	canvas   canvas.Canvas
	width    int
	height   int
	fold     cases.Caser
}

// TargetSpec declares one browser to track.
type TargetSpec struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Platform string `yaml:"platform"`
}

// NewDisplay builds a display for a fixed target list. Membership and
// order are final: order drives layout, and the uniform cell width is
// computed here, once. Dimensions must be set via Resize before the first
// event arrives.
func NewDisplay(specs []TargetSpec, resolver *Resolver, styles Styles, cv canvas.Canvas) *Display {
	targets := make([]*Target, 0, len(specs))
	for _, s := range specs {
		targets = append(targets, NewTarget(s.Name, s.Version, s.Platform))
	}
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &Display{
		targets:  targets,
		resolver: resolver,
		renderer: NewRenderer(targets, styles),
		canvas:   cv,
		width:    80,
		height:   24,
		fold:     cases.Fold(),
	}
}

// Resize sets the canvas dimensions used for layout.
func (d *Display) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if width > 0 {
		d.width = width
	}
	if height > 0 {
		d.height = height
	}
}

// SetCanvas swaps the drawing surface. The dashboard re-targets rendering
// into a fresh buffer each frame.
func (d *Display) SetCanvas(cv canvas.Canvas) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.canvas = cv
}

// Targets returns the target set. The slice is shared; callers read it
// only after the run has settled.
func (d *Display) Targets() []*Target {
	return d.targets
}

// CellWidth returns the fixed uniform column width.
func (d *Display) CellWidth() int {
	return d.renderer.CellWidth()
}

// OnInit handles a browser init event: the target starts running.
func (d *Display) OnInit(t *Target) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t.Start()
	d.render()
}

// OnStart handles a browser start event. Same transition as init; which of
// the two arrives first depends on the orchestrator.
func (d *Display) OnStart(t *Target) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t.Start()
	d.render()
}

// OnEnd handles a browser end event, attaching its results.
func (d *Display) OnEnd(t *Target, results *Results) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t.End(results)
	d.render()
}

// Find locates a target by exact identity. Used by event adapters to map
// wire events onto owned targets; returns nil when unknown.
func (d *Display) Find(name, version, platform string) *Target {
	for _, t := range d.targets {
		if t.Name == name && t.Version == version && t.Platform == platform {
			return t
		}
	}
	return nil
}

// MarkAsFailed reconciles an externally reported browser identity against
// the local target set and fails every match. Raw names go through the
// resolver first; matching is case-insensitive on the canonical values.
// Unresolvable or unmatched identities are a silent no-op — the remote
// fleet is not authoritative over local target identity — but the grid is
// redrawn unconditionally to keep the side effects predictable.
func (d *Display) MarkAsFailed(rawName, rawVersion, rawPlatform string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	name, platform := d.resolver.Resolve(rawName, rawPlatform)
	if name != "" && platform != "" {
		for _, t := range d.targets {
			if d.equalFold(t.Name, name) && d.equalFold(t.Platform, platform) {
				t.Fail()
			}
		}
	}
	d.render()
}

// Render redraws the grid outside of an event, e.g. after a resize.
func (d *Display) Render() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.render()
}

func (d *Display) render() {
	if d.canvas == nil {
		return
	}
	d.renderer.Render(d.targets, d.canvas, d.width)
}

// equalFold compares strings under full Unicode case folding.
func (d *Display) equalFold(a, b string) bool {
	return d.fold.String(a) == d.fold.String(b)
}
