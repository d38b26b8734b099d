// Package patterns holds the fixed tables a spec document is checked against:
// the required section names for each validation mode and the quality-issue
// patterns.
//
// The tables are built once at package initialization and never mutated.
// Accessors return copies so callers cannot alter them.
package patterns

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Quality issue names, in scan order.
const (
	UnresolvedPlaceholders    = "unresolved_placeholders"
	EmptyTables               = "empty_tables"
	MissingAcceptanceCriteria = "missing_acceptance_criteria"
	VagueLanguage             = "vague_language"
)

//nolint:gochecknoglobals // Read-only lookup table.
var fullSections = []string{
	"Overview",
	"User Stories",
	"Technical",
	"UI/UX",
	"Edge Cases",
	"Security",
	"Performance",
	"Implementation",
}

//nolint:gochecknoglobals // Read-only lookup table.
var quickSections = []string{
	"What",
	"Why",
	"How",
	"Acceptance Criteria",
}

// Pattern is a named quality check.
type Pattern struct {
	// Name is the snake_case issue identifier.
	Name string

	// Regexp matches one occurrence of the issue.
	Regexp *regexp.Regexp

	// Critical marks issues that fail validation on their own.
	Critical bool
}

//nolint:gochecknoglobals // Compiled once, read-only afterwards.
var quality = []Pattern{
	{
		Name:     UnresolvedPlaceholders,
		Regexp:   regexp.MustCompile(`(?i)\[(?:TODO|TBD|PLACEHOLDER|XXX|FIXME)\]`),
		Critical: true,
	},
	{
		// Cells hold only blanks; kept within one line.
		Name:   EmptyTables,
		Regexp: regexp.MustCompile(`\|[ \t]*\|[ \t]*\|`),
	},
	{
		Name:   MissingAcceptanceCriteria,
		Regexp: regexp.MustCompile(`- \[ \] \[`),
	},
	{
		Name:   VagueLanguage,
		Regexp: regexp.MustCompile(`(?i)\b(?:maybe|probably|might|could|should consider)\b|\betc\.`),
	},
}

// FullSections returns the sections required of a full spec, in order.
func FullSections() []string {
	return clone(fullSections)
}

// QuickSections returns the sections required of a quick spec, in order.
func QuickSections() []string {
	return clone(quickSections)
}

// Quality returns the quality patterns in scan order.
func Quality() []Pattern {
	out := make([]Pattern, len(quality))
	copy(out, quality)
	return out
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	for _, p := range quality {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// DisplayName converts an issue identifier into its report label,
// e.g. "unresolved_placeholders" becomes "Unresolved Placeholders".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
