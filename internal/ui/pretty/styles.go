// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Status symbols used in reports.
const (
	SymbolPass   = "✓"
	SymbolWarn   = "⚠"
	SymbolFail   = "✗"
	SymbolBullet = "•"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Failure lipgloss.Style

	// Report components
	FilePath  lipgloss.Style
	Heading   lipgloss.Style
	Bullet    lipgloss.Style
	Value     lipgloss.Style
	Separator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		FilePath:  lipgloss.NewStyle().Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:     lipgloss.NewStyle().Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Success:   plain,
		Warning:   plain,
		Failure:   plain,
		FilePath:  plain,
		Heading:   plain,
		Bullet:    plain,
		Value:     plain,
		Separator: plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
