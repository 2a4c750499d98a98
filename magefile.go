//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
)

const (
	modulePath = "github.com/dkoosis/browsergrid"
	binPath    = "./bin/browsergrid"
)

// Default target - build the binary
var Default = Build

// Build compiles the browsergrid binary with version metadata.
func Build() error {
	ldflags := fmt.Sprintf(
		"-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, gitVersion(), modulePath, gitCommit(), modulePath,
		time.Now().UTC().Format(time.RFC3339))
	return runCmd("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/browsergrid")
}

// Test runs the full test suite with the race detector.
func Test() error {
	return runCmd("go", "test", "-race", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return runCmd("go", "vet", "./...")
}

// QA runs format check, vet, and tests.
func QA() error {
	mg.Deps(Vet)
	if err := runCmd("gofmt", "-l", "."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("./bin")
}

func runCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func gitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
