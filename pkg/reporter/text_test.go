package reporter_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/specvalidate/pkg/config"
	"github.com/yaklabco/specvalidate/pkg/fsutil"
	"github.com/yaklabco/specvalidate/pkg/patterns"
	"github.com/yaklabco/specvalidate/pkg/reporter"
	"github.com/yaklabco/specvalidate/pkg/runner"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

func newTestReporter(buf *bytes.Buffer) reporter.Reporter {
	return reporter.New(reporter.Options{
		Writer:      buf,
		Color:       "never",
		ShowSummary: true,
	})
}

func TestTextReporter_PassedReport(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestReporter(&buf)

	outcome := runner.FileOutcome{
		Path: "quick.md",
		Result: &validate.Result{
			Mode:     config.ModeQuick,
			Required: patterns.QuickSections(),
			Found:    patterns.QuickSections(),
			Stats:    validate.Stats{Criteria: 3, CodeBlocks: 0, TableRows: 0, Lines: 14},
			Verdict:  validate.VerdictPassed,
		},
	}

	require.NoError(t, rep.ReportFile(context.Background(), outcome))

	separator := strings.Repeat("=", 50)
	want := "\n" +
		"Validating: quick.md\n" +
		separator + "\n" +
		"\n" +
		"✓ All 4 required sections present\n" +
		"\n" +
		"✓ No quality issues detected\n" +
		"\n" +
		"Statistics:\n" +
		"  • Lines: 14\n" +
		"  • Acceptance criteria: 3\n" +
		"  • Code blocks: 0\n" +
		"  • Table rows: 0\n" +
		"\n" +
		"Recommendations:\n" +
		"  • None\n" +
		"\n" +
		separator + "\n" +
		"✓ Validation PASSED\n"

	assert.Equal(t, want, buf.String())
}

func TestTextReporter_FailedReport(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestReporter(&buf)

	content := "## Overview\n## User Stories\n## Technical\n## UI/UX\n## Edge Cases\n## Implementation\n[TODO]\nmaybe\n"
	res := validate.Validate(content, validate.Options{Mode: config.ModeFull})

	require.NoError(t, rep.ReportFile(context.Background(), runner.FileOutcome{Path: "full.md", Result: res}))

	out := buf.String()
	assert.Contains(t, out, "✗ Missing sections (2):\n  • Security\n  • Performance\n")
	assert.Contains(t, out, "⚠ Quality issues found:\n")
	assert.Contains(t, out, "  • Unresolved Placeholders: 1 instance(s)\n")
	assert.Contains(t, out, "  • Vague Language: 1 instance(s)\n")
	assert.Contains(t, out, "  • Add more acceptance criteria (currently 0)\n")
	assert.Contains(t, out, "  • Consider using tables for structured data\n")
	assert.True(t, strings.HasSuffix(out, "✗ Validation FAILED - address critical issues above\n"))

	// Placeholders are listed before vague language.
	assert.Less(t, strings.Index(out, "Unresolved Placeholders"), strings.Index(out, "Vague Language"))
}

func TestTextReporter_WarningsReport(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestReporter(&buf)

	res := validate.Validate("## What\n## Why\n## How\n## Acceptance Criteria\n| | |\n", validate.Options{Mode: config.ModeQuick})
	require.NoError(t, rep.ReportFile(context.Background(), runner.FileOutcome{Path: "q.md", Result: res}))

	out := buf.String()
	assert.Contains(t, out, "  • Empty Tables: 1 instance(s)\n")
	assert.True(t, strings.HasSuffix(out, "⚠ Validation PASSED with warnings\n"))
}

func TestTextReporter_FileNotFound(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestReporter(&buf)

	outcome := runner.FileOutcome{
		Path:  "missing.md",
		Error: fmt.Errorf("%w: missing.md", fsutil.ErrNotFound),
	}
	require.NoError(t, rep.ReportFile(context.Background(), outcome))

	assert.Equal(t, "\n✗ File not found: missing.md\n", buf.String())
}

func TestTextReporter_OtherReadError(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestReporter(&buf)

	outcome := runner.FileOutcome{Path: "docs", Error: errors.New("path is a directory: docs")}
	require.NoError(t, rep.ReportFile(context.Background(), outcome))

	assert.Equal(t, "\n✗ Cannot read docs: path is a directory: docs\n", buf.String())
}

func TestTextReporter_Summary(t *testing.T) {
	t.Run("single file prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		rep := newTestReporter(&buf)

		require.NoError(t, rep.ReportSummary(context.Background(), &runner.Result{
			Stats: runner.Stats{FilesTotal: 1, FilesPassed: 1},
		}))
		assert.Empty(t, buf.String())
	})

	t.Run("batch prints one line", func(t *testing.T) {
		var buf bytes.Buffer
		rep := newTestReporter(&buf)

		require.NoError(t, rep.ReportSummary(context.Background(), &runner.Result{
			Stats: runner.Stats{FilesTotal: 2, FilesPassed: 1, FilesUnreadable: 1},
		}))
		assert.Equal(t, "\n2 files validated: 1 passed, 0 with warnings, 1 failed (1 unreadable)\n", buf.String())
	})

	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer
		rep := reporter.New(reporter.Options{Writer: &buf, Color: "never"})

		require.NoError(t, rep.ReportSummary(context.Background(), &runner.Result{
			Stats: runner.Stats{FilesTotal: 3, FilesPassed: 3},
		}))
		assert.Empty(t, buf.String())
	})
}

func TestTextReporter_Deterministic(t *testing.T) {
	res := validate.Validate("## Overview\nmaybe maybe\n", validate.Options{})
	outcome := runner.FileOutcome{Path: "spec.md", Result: res}

	render := func() string {
		var buf bytes.Buffer
		require.NoError(t, newTestReporter(&buf).ReportFile(context.Background(), outcome))
		return buf.String()
	}

	assert.Equal(t, render(), render())
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowSummary)
}
