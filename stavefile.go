//go:build stave

package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
	"c": Clean,
}

// All runs the complete build pipeline: lint, test, and build.
func All() error {
	st.Deps(Init)
	st.Deps(Lint, Test)
	st.Deps(Build)
	return nil
}

// Init ensures the module dependencies are up to date.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles both roc-cli and roc-bench binaries.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_CLI, Build_Bench)
	return nil
}

// Build_CLI compiles the roc-cli binary with version information.
func Build_CLI() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/roc-cli", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("roc-cli is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/roc-cli", "./cmd/roc-cli")
}

// Build_Bench compiles the roc-bench binary with version information.
func Build_Bench() error {
	st.Deps(Init)

	// Check if rebuild is needed
	rebuild, err := target.Glob("bin/roc-bench", "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("roc-bench is up to date")
		}
		return nil
	}

	ldflags := buildLdflags()
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/roc-bench", "./cmd/roc-bench")
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	date := time.Now().Format(time.RFC3339)

	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version),
		strings.TrimSpace(commit),
		date,
	)
}

// Test runs all tests with race detection and coverage.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// TestShort runs tests in short mode (skips long-running tests).
func TestShort() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-short", "-race", "./...")
}

// TestVerbose runs tests with verbose output.
func TestVerbose() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "-v", "./...")
}

// Lint runs golangci-lint on the codebase.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// LintFix runs golangci-lint with auto-fix enabled.
func LintFix() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code using gofmt and goimports.
func Fmt() error {
	if err := sh.Run("gofmt", "-w", "."); err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if err := sh.Run("goimports", "-w", "."); err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	return nil
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	artifacts := []string{
		"bin/",
		"roc-bench",
		"roc-cli",
	}
	for _, a := range artifacts {
		if err := sh.Rm(a); err != nil {
			return fmt.Errorf("removing %s: %w", a, err)
		}
	}
	return nil
}

// Install builds and installs the binaries to GOBIN.
func Install() error {
	st.Deps(Build)

	gocmd := st.GoCmd()
	bin, err := sh.Output(gocmd, "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("determining GOBIN: %w", err)
	}
	if bin == "" {
		gopath, err := sh.Output(gocmd, "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("determining GOPATH: %w", err)
		}
		bin = gopath + "/bin"
	}

	binaries := []string{"roc-cli", "roc-bench"}
	for _, name := range binaries {
		src := "bin/" + name
		dst := bin + "/" + name
		if runtime.GOOS == "windows" {
			dst += ".exe"
		}
		if err := sh.Copy(dst, src); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
		if st.Verbose() {
			fmt.Printf("Installed %s to %s\n", name, dst)
		}
	}
	return nil
}

// presets are the built-in datasets, in catalog order.
var presets = []string{"separated", "unseparated", "imbalanced"}

// plotPath names the chart Bench:Plots writes for one dataset and curve.
func plotPath(name, kind string) string {
	return fmt.Sprintf("bin/plots/%s-%s.svg", name, kind)
}

// Bench namespace for benchmark-related targets.
type Bench st.Namespace

// Run compares every built-in dataset at the configured threshold.
func (Bench) Run() error {
	st.Deps(Build_Bench)

	return sh.RunV("./bin/roc-bench",
		"-datasets", strings.Join(presets, ","),
	)
}

// Sweep runs a threshold sweep over one dataset to find the best threshold.
// ROC_DATASET selects the dataset.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)

	name := os.Getenv("ROC_DATASET")
	if name == "" {
		name = "unseparated"
	}

	return sh.RunV("./bin/roc-bench",
		"-dataset", name,
		"-sweep",
	)
}

// Plots renders the ROC and PR curves of each built-in dataset into bin/plots.
func (Bench) Plots() error {
	st.Deps(Build_CLI)

	if err := os.MkdirAll("bin/plots", 0o755); err != nil {
		return fmt.Errorf("creating plot dir: %w", err)
	}
	for _, name := range presets {
		for _, kind := range []string{"roc", "pr"} {
			out := plotPath(name, kind)
			if err := sh.Run("./bin/roc-cli", "plot", "--dataset", name, "--curve", kind, "--out", out); err != nil {
				return fmt.Errorf("plotting %s: %w", out, err)
			}
		}
	}
	return nil
}

// VerifyPlots renders every chart and checks each one is a non-empty SVG.
func (Bench) VerifyPlots() error {
	st.Deps(Bench.Plots)

	for _, name := range presets {
		for _, kind := range []string{"roc", "pr"} {
			out := plotPath(name, kind)
			data, err := os.ReadFile(out)
			if err != nil {
				return fmt.Errorf("reading %s: %w", out, err)
			}
			if !strings.Contains(string(data), "<svg") {
				return fmt.Errorf("%s is not an SVG chart", out)
			}
		}
	}
	if st.Verbose() {
		fmt.Printf("Verified %d plots\n", 2*len(presets))
	}
	return nil
}

// Tour prints the confusion matrix of each built-in dataset at the default
// threshold, with its explanation.
func (Bench) Tour() error {
	st.Deps(Build_CLI)

	for _, name := range presets {
		if err := sh.RunV("./bin/roc-cli", "confusion", "--dataset", name); err != nil {
			return fmt.Errorf("confusion for %s: %w", name, err)
		}
	}
	return nil
}

// CI runs the full CI pipeline (lint, test, build).
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build, Bench.VerifyPlots)
	return nil
}

// Check runs quick validation (vet, lint, short tests).
func Check() error {
	st.Deps(Vet, Lint, TestShort)
	return nil
}

// Coverage generates a coverage report.
func Coverage() error {
	st.Deps(Init)
	if err := sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Tidy runs go mod tidy and verifies the go.sum is clean.
func Tidy() error {
	if err := sh.Run("go", "mod", "tidy"); err != nil {
		return err
	}
	// Verify no changes to go.sum (useful for CI)
	output, err := sh.Output("git", "diff", "--exit-code", "go.sum")
	if err != nil {
		if output != "" {
			return fmt.Errorf("go.sum is not clean:\n%s", output)
		}
	}
	return nil
}
