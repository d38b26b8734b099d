package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/specvalidate/internal/cli"
	"github.com/yaklabco/specvalidate/pkg/runner"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "specvalidate", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Contains(t, cmd.Version, "test-version")
	assert.Empty(t, cmd.Commands())
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	tests := []struct {
		name     string
		defValue string
	}{
		{"quick", "false"},
		{"config", ""},
		{"no-config", "false"},
		{"color", "auto"},
		{"debug", "false"},
		{"print-config", "false"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.name)
		if assert.NotNil(t, flag, "flag --%s", tt.name) {
			assert.Equal(t, tt.defValue, flag.DefValue, "flag --%s", tt.name)
		}
	}
}

func TestRootCommandRequiresFile(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrValidationFailed)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestRootCommandVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "test-version (commit test-commit, built test-date)")
}

func TestRootCommandHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--quick")
	assert.Contains(t, out.String(), "Examples:")
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{"nil result", nil, cli.ExitSuccess},
		{
			name:   "all passed",
			result: &runner.Result{Stats: runner.Stats{FilesTotal: 2, FilesPassed: 1, FilesWithWarnings: 1}},
			want:   cli.ExitSuccess,
		},
		{
			name:   "one failed",
			result: &runner.Result{Stats: runner.Stats{FilesTotal: 2, FilesPassed: 1, FilesFailed: 1}},
			want:   cli.ExitValidationFailed,
		},
		{
			name:   "unreadable",
			result: &runner.Result{Stats: runner.Stats{FilesTotal: 1, FilesUnreadable: 1}},
			want:   cli.ExitValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(tt.result))
		})
	}
}
