package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// These exercise the full plain-mode pipeline:
// stdin events → display → grid render → failure report → exit code.

func writeTargets(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "browsers.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const twoTargets = `targets:
  - name: Chrome
    version: "70"
    platform: Windows 2012
  - name: Firefox
    version: "63"
    platform: Linux
`

func TestRun_FailingRunReportsAndExitsNonZero(t *testing.T) {
	targets := writeTargets(t, twoTargets)
	stdin := strings.NewReader(strings.Join([]string{
		`{"action":"init","browser":"Chrome","version":"70","platform":"Windows 2012"}`,
		`{"action":"init","browser":"Firefox","version":"63","platform":"Linux"}`,
		`{"action":"end","browser":"Chrome","version":"70","platform":"Windows 2012","results":{"failures":1,"failed":[{"title":"renders the header","message":"boom","trace":"Error: boom\n  at spec.js:3"}]}}`,
		`{"action":"end","browser":"Firefox","version":"63","platform":"Linux","results":{"failures":0}}`,
	}, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-targets", targets, "-plain", "-theme", "mono"}, stdin, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Failed browsers") {
		t.Errorf("missing report header; got:\n%s", out)
	}
	if !strings.Contains(out, "Chrome 70 (Windows 2012)") {
		t.Errorf("missing failing browser section; got:\n%s", out)
	}
	if !strings.Contains(out, "renders the header") || !strings.Contains(out, "Error: boom") {
		t.Errorf("missing failure detail; got:\n%s", out)
	}
}

func TestRun_PassingRunExitsZero(t *testing.T) {
	targets := writeTargets(t, twoTargets)
	stdin := strings.NewReader(strings.Join([]string{
		`{"action":"init","browser":"Chrome","version":"70","platform":"Windows 2012"}`,
		`{"action":"end","browser":"Chrome","version":"70","platform":"Windows 2012","results":{"failures":0}}`,
		`{"action":"init","browser":"Firefox","version":"63","platform":"Linux"}`,
		`{"action":"end","browser":"Firefox","version":"63","platform":"Linux","results":{"failures":0}}`,
	}, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-targets", targets, "-plain", "-theme", "mono"}, stdin, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "all browsers passed") {
		t.Errorf("missing pass summary; got:\n%s", stdout.String())
	}
}

func TestRun_PipedOutputCarriesNoEscapeSequences(t *testing.T) {
	targets := writeTargets(t, twoTargets)
	stdin := strings.NewReader(strings.Join([]string{
		`{"action":"init","browser":"Chrome","version":"70","platform":"Windows 2012"}`,
		`{"action":"end","browser":"Chrome","version":"70","platform":"Windows 2012","results":{"failures":0}}`,
		`{"action":"end","browser":"Firefox","version":"63","platform":"Linux","results":{"failures":0}}`,
	}, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-targets", targets, "-plain", "-theme", "mono"}, stdin, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if strings.Contains(out, "\033") {
		t.Errorf("piped output contains escape sequences:\n%q", out)
	}
	// The final grid snapshot is printed as plain lines.
	if !strings.Contains(out, "Chrome 70") || !strings.Contains(out, "Windows 2012") {
		t.Errorf("missing final grid snapshot; got:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("grid snapshot missing status symbols; got:\n%s", out)
	}
}

func TestRun_ErroredBrowserFailsTheGridButBlocksCollection(t *testing.T) {
	// A target failed by the fleet that never sends end has no results, so
	// failure collection reports the ordering problem instead of silently
	// skipping the browser.
	targets := writeTargets(t, twoTargets)
	stdin := strings.NewReader(strings.Join([]string{
		`{"action":"errored","browser":"chrome","version":"70","platform":"Windows 8"}`,
		`{"action":"end","browser":"Firefox","version":"63","platform":"Linux","results":{"failures":0}}`,
	}, "\n") + "\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-targets", targets, "-plain"}, stdin, &stdout, &stderr)

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no results for Chrome 70") {
		t.Errorf("expected missing-results error on stderr, got: %s", stderr.String())
	}
}

func TestRun_RequiresTargetsFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "-targets is required") {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
}

func TestRun_RejectsEmptyTargetList(t *testing.T) {
	targets := writeTargets(t, "targets: []\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-targets", targets}, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestRun_VersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-version"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "browsergrid") {
		t.Errorf("unexpected version output: %s", stdout.String())
	}
}
