//go:build cucumber

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/yaklabco/specvalidate/internal/cli"
)

// TestValidateScenarios runs the end-to-end validation feature scenarios.
func TestValidateScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "validate",
		ScenarioInitializer: InitializeValidateScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("testdata", "features", "validate.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeValidateScenario wires steps for validation scenarios.
func InitializeValidateScenario(ctx *godog.ScenarioContext) {
	state := &validateScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		return ctx, os.RemoveAll(state.dir)
	})

	ctx.Step(`^a file "([^"]+)" containing:$`, state.givenFile)
	ctx.Step(`^I run specvalidate with "([^"]*)"$`, state.whenIRun)
	ctx.Step(`^the exit code is (\d+)$`, state.thenExitCode)
	ctx.Step(`^the output contains "([^"]+)"$`, state.thenOutputContains)
	ctx.Step(`^the missing sections are "([^"]+)"$`, state.thenMissingSections)
}

type validateScenarioState struct {
	dir      string
	stdout   string
	exitCode int
}

// reset creates a fresh working directory for the scenario.
func (s *validateScenarioState) reset() error {
	dir, err := os.MkdirTemp("", "specvalidate-feature-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.dir = dir
	s.stdout = ""
	s.exitCode = 0
	return nil
}

// givenFile writes a document into the scenario directory.
func (s *validateScenarioState) givenFile(name string, body *godog.DocString) error {
	return os.WriteFile(filepath.Join(s.dir, name), []byte(body.Content+"\n"), 0o600)
}

// whenIRun executes the root command; relative file arguments resolve
// against the scenario directory.
func (s *validateScenarioState) whenIRun(argLine string) error {
	var args []string
	for _, arg := range strings.Fields(argLine) {
		if !strings.HasPrefix(arg, "-") {
			arg = filepath.Join(s.dir, arg)
		}
		args = append(args, arg)
	}

	var stdout bytes.Buffer
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "feature"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--no-config"}, args...))

	err := cmd.Execute()
	s.stdout = stdout.String()
	switch {
	case err == nil:
		s.exitCode = cli.ExitSuccess
	case errors.Is(err, cli.ErrValidationFailed):
		s.exitCode = cli.ExitValidationFailed
	default:
		return fmt.Errorf("command error: %w", err)
	}
	return nil
}

// thenExitCode asserts the exit status.
func (s *validateScenarioState) thenExitCode(want int) error {
	if s.exitCode != want {
		return fmt.Errorf("expected exit code %d, got %d\n%s", want, s.exitCode, s.stdout)
	}
	return nil
}

// thenOutputContains asserts the report contains text.
func (s *validateScenarioState) thenOutputContains(text string) error {
	if !strings.Contains(s.stdout, text) {
		return fmt.Errorf("expected output to contain %q\n%s", text, s.stdout)
	}
	return nil
}

// thenMissingSections asserts the missing list, in order.
func (s *validateScenarioState) thenMissingSections(list string) error {
	names := strings.Split(list, ", ")
	want := fmt.Sprintf("Missing sections (%d):\n", len(names))
	for _, name := range names {
		want += "  • " + name + "\n"
	}
	if !strings.Contains(s.stdout, want) {
		return fmt.Errorf("expected missing list %q\n%s", want, s.stdout)
	}
	return nil
}
