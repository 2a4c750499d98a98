// Package grid tracks a fixed set of browser test targets and renders
// their live status as a wrapped grid of cells on a drawing surface.
package grid

import "fmt"

// State is a target's lifecycle state.
type State string

const (
	StatePending State = "pending" // declared, no activity yet
	StateRunning State = "running" // init or start seen
	StateEnded   State = "ended"   // end seen, results attached
	StateFailed  State = "failed"  // externally declared failed; sticky
)

// TestFailure is one failed test as reported in a target's results.
type TestFailure struct {
	Title        string
	ErrorMessage string
	// ErrorTrace is the full stack representation; ErrorMessage is
	// usually embedded in it as a prefix of a larger trace.
	ErrorTrace string
}

// Results holds the outcome a target's end event carries.
type Results struct {
	FailureCount int
	Failed       []TestFailure
}

// Target is one browser/version/platform combination being tracked.
// Identity fields are fixed at construction; State and Results mutate as
// lifecycle events arrive. Targets are owned by a Display — external code
// transitions them only through the Display's entry points.
type Target struct {
	Name     string
	Version  string
	Platform string

	State   State
	Results *Results
}

// NewTarget creates a pending target.
func NewTarget(name, version, platform string) *Target {
	return &Target{
		Name:     name,
		Version:  version,
		Platform: platform,
		State:    StatePending,
	}
}

// Label returns the grid cell's first-row text, "Name Version".
func (t *Target) Label() string {
	return fmt.Sprintf("%s %s", t.Name, t.Version)
}

// Start moves a pending target to running. Init and start events both land
// here; a target already running, ended or failed is left alone.
func (t *Target) Start() {
	if t.State == StatePending {
		t.State = StateRunning
	}
}

// End attaches results and moves the target to ended. A target that was
// already failed by an external signal keeps its failed state — a late
// passing end never un-fails it — but the results still attach so failure
// collection can report them.
func (t *Target) End(results *Results) {
	t.Results = results
	if t.State != StateFailed {
		t.State = StateEnded
	}
}

// Fail marks the target failed. Idempotent; reachable from any state.
func (t *Target) Fail() {
	t.State = StateFailed
}

// Failed reports whether the target should display the error symbol:
// either externally failed, or ended with failing results.
func (t *Target) Failed() bool {
	if t.State == StateFailed {
		return true
	}
	return t.Results != nil && t.Results.FailureCount > 0
}
