// Package output provides styled terminal rendering helpers for the
// termgrid CLI surface. The library packages under table/ and ansi/
// handle grid content; this package only styles the CLI's own chrome
// (file headings, separator rules).
package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headings and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorMuted is used for secondary text.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeading is used for per-file headings in multi-file output.
	StyleHeading = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleMuted is used for de-emphasized text such as separator rules.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeading = plain
		StyleMuted = plain
	}
}

// Rule returns a horizontal rule spanning width columns, styled muted.
func Rule(width int) string {
	if width <= 0 {
		width = 80
	}
	return StyleMuted.Render(strings.Repeat("─", width))
}
