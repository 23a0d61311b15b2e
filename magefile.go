//go:build mage

package main

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/gloss"
	binPath    = "./bin/gloss"
)

// Default target - build the binary
var Default = Build

// Build builds the gloss binary with version metadata.
func Build() error {
	version := gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*")
	commit := gitOutput("unknown", "rev-parse", "--short", "HEAD")
	date := time.Now().UTC().Format(time.RFC3339)

	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, version, commit, date)

	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/gloss")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("./bin")
}

// QA runs formatting, vet, linters and the race-enabled tests.
func QA() {
	mg.SerialDeps(Lint.All, Test.Race, Build)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci)
}

// Format fails when any file needs gofmt.
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint when it is installed.
func (Lint) Golangci() error {
	return optional("golangci-lint", "run", "--timeout=5m", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// optional runs a tool, skipping with a note when it is not installed.
func optional(tool string, args ...string) error {
	if _, err := exec.LookPath(tool); err != nil {
		fmt.Printf("%s not found, skipping\n", tool)
		return nil
	}
	return sh.RunV(tool, args...)
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
