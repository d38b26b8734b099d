package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/specvalidate/pkg/runner"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

const (
	separatorWidth = 50
	wordFile       = "file"
	wordFiles      = "files"
)

// FormatSeparator returns the rule drawn around each file report.
func (s *Styles) FormatSeparator() string {
	return s.Separator.Render(strings.Repeat("=", separatorWidth))
}

// FormatFileHeader formats the heading that opens a file report.
func (s *Styles) FormatFileHeader(path string) string {
	return "Validating: " + s.FilePath.Render(path) + "\n" + s.FormatSeparator()
}

// FormatHeading formats a report block title, e.g. "Statistics:".
func (s *Styles) FormatHeading(title string) string {
	return s.Heading.Render(title)
}

// FormatBullet formats an indented list item.
func (s *Styles) FormatBullet(text string) string {
	return "  " + s.Bullet.Render(SymbolBullet) + " " + text
}

// FormatPass prefixes msg with the pass symbol.
func (s *Styles) FormatPass(msg string) string {
	return s.Success.Render(SymbolPass + " " + msg)
}

// FormatWarn prefixes msg with the warning symbol.
func (s *Styles) FormatWarn(msg string) string {
	return s.Warning.Render(SymbolWarn + " " + msg)
}

// FormatFail prefixes msg with the failure symbol.
func (s *Styles) FormatFail(msg string) string {
	return s.Failure.Render(SymbolFail + " " + msg)
}

// FormatVerdict formats the final verdict line of a file report.
func (s *Styles) FormatVerdict(v validate.Verdict) string {
	switch v {
	case validate.VerdictPassed:
		return s.FormatPass("Validation PASSED")
	case validate.VerdictPassedWithWarnings:
		return s.FormatWarn("Validation PASSED with warnings")
	default:
		return s.FormatFail("Validation FAILED - address critical issues above")
	}
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files validated: 1 passed, 1 with warnings, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesTotal == 1 {
		fileWord = wordFile
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("%d passed", stats.FilesPassed)),
		s.Warning.Render(fmt.Sprintf("%d with warnings", stats.FilesWithWarnings)),
	}

	failed := fmt.Sprintf("%d failed", stats.Failures())
	if stats.Failures() > 0 {
		parts = append(parts, s.Failure.Render(failed))
	} else {
		parts = append(parts, s.Dim.Render(failed))
	}

	line := fmt.Sprintf("%d %s validated: %s", stats.FilesTotal, fileWord, strings.Join(parts, ", "))
	if stats.FilesUnreadable > 0 {
		line += s.Dim.Render(fmt.Sprintf(" (%d unreadable)", stats.FilesUnreadable))
	}

	return line + "\n"
}
