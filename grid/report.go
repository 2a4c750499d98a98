package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/browsergrid/internal/design"
)

// MissingResultsError reports that failure collection ran before a target
// had results. That is an ordering bug in the caller — collection must only
// happen after every target has ended — and is surfaced rather than
// swallowed, since skipping the target would hide real failures.
type MissingResultsError struct {
	Name     string
	Version  string
	Platform string
}

func (e *MissingResultsError) Error() string {
	return fmt.Sprintf("no results for %s %s (%s): failure collection invoked before run ended", e.Name, e.Version, e.Platform)
}

// ReportedFailure is one failed test in a failure report.
type ReportedFailure struct {
	Title string
	// DisplayedError is the portion of the trace up to and including the
	// first occurrence of the error message.
	DisplayedError string
}

// FailureReport summarizes one target's failures.
type FailureReport struct {
	Label    string
	Platform string
	Failures []ReportedFailure
}

// CollectFailures builds failure reports for every target whose results
// contain failures, in target order. A target with no results at all
// yields a MissingResultsError.
func CollectFailures(targets []*Target) ([]FailureReport, error) {
	var reports []FailureReport
	for _, t := range targets {
		if t.Results == nil {
			return nil, &MissingResultsError{Name: t.Name, Version: t.Version, Platform: t.Platform}
		}
		if t.Results.FailureCount == 0 {
			continue
		}
		report := FailureReport{
			Label:    t.Label(),
			Platform: t.Platform,
			Failures: make([]ReportedFailure, 0, len(t.Results.Failed)),
		}
		for _, f := range t.Results.Failed {
			report.Failures = append(report.Failures, ReportedFailure{
				Title:          f.Title,
				DisplayedError: displayedError(f),
			})
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// displayedError trims the trace after the first occurrence of the error
// message. An empty message yields an empty prefix.
func displayedError(f TestFailure) string {
	idx := strings.Index(f.ErrorTrace, f.ErrorMessage)
	if idx < 0 {
		return f.ErrorTrace
	}
	return f.ErrorTrace[:idx+len(f.ErrorMessage)]
}

// WriteReport prints failure reports to w using the theme's styles: one
// section per browser, each failed test title with its displayed error
// indented beneath.
func WriteReport(w io.Writer, reports []FailureReport, theme *design.Theme) {
	if len(reports) == 0 {
		fmt.Fprintln(w, theme.Success.Render("✓ all browsers passed"))
		return
	}

	fmt.Fprintln(w, theme.Header.Render("Failed browsers"))
	for _, report := range reports {
		fmt.Fprintf(w, "\n%s %s (%s)\n", theme.Error.Render("✖"), report.Label, report.Platform)
		for _, f := range report.Failures {
			fmt.Fprintf(w, "    %s\n", theme.Error.Render(f.Title))
			for _, line := range strings.Split(f.DisplayedError, "\n") {
				if line == "" {
					continue
				}
				fmt.Fprintf(w, "        %s\n", theme.Muted.Render(line))
			}
		}
	}
}
