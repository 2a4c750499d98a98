package events

import "github.com/dkoosis/browsergrid/grid"

// Apply routes one decoded event to the display's entry points. init,
// start and end address a target by exact identity and are dropped when no
// such target exists; errored goes through the display's identity
// reconciliation, which tolerates unknown browsers itself. Returns false
// for a dropped event.
func Apply(e Event, d *grid.Display) bool {
	if e.Action == ActionErrored {
		d.MarkAsFailed(e.Browser, e.Version, e.Platform)
		return true
	}

	t := d.Find(e.Browser, e.Version, e.Platform)
	if t == nil {
		return false
	}
	switch e.Action {
	case ActionInit:
		d.OnInit(t)
	case ActionStart:
		d.OnStart(t)
	case ActionEnd:
		d.OnEnd(t, convertResults(e.Results))
	default:
		return false
	}
	return true
}

// convertResults maps wire results onto the grid's result record. A nil
// results block on an end event becomes an empty, passing record so the
// target still counts as ended with results attached.
func convertResults(r *RunResults) *grid.Results {
	if r == nil {
		return &grid.Results{}
	}
	out := &grid.Results{FailureCount: r.Failures}
	for _, f := range r.Failed {
		out.Failed = append(out.Failed, grid.TestFailure{
			Title:        f.Title,
			ErrorMessage: f.Message,
			ErrorTrace:   f.Trace,
		})
	}
	return out
}
