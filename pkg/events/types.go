// Package events parses the NDJSON lifecycle stream the test orchestrator
// emits, one event per line.
package events

// Actions a lifecycle event can carry.
const (
	ActionInit    = "init"
	ActionStart   = "start"
	ActionEnd     = "end"
	ActionErrored = "errored"
)

// Event is a single lifecycle notification for one browser.
//
// init/start/end identify a locally declared target by exact name, version
// and platform. errored carries the identity as reported by the remote
// fleet; it is reconciled against local targets through the normalization
// tables rather than matched exactly.
type Event struct {
	Action   string      `json:"action"`
	Browser  string      `json:"browser"`
	Version  string      `json:"version"`
	Platform string      `json:"platform"`
	Results  *RunResults `json:"results,omitempty"`
}

// RunResults is the outcome attached to an end event.
type RunResults struct {
	Failures int          `json:"failures"`
	Failed   []RunFailure `json:"failed,omitempty"`
}

// RunFailure is one failed test inside an end event's results.
type RunFailure struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Trace   string `json:"trace"`
}

// known reports whether the action is part of the protocol.
func known(action string) bool {
	switch action {
	case ActionInit, ActionStart, ActionEnd, ActionErrored:
		return true
	}
	return false
}
