// Package style defines the visual theme for tdl. Colours and text
// styles live here so every command renders with the same look.
//
// Call Init(colorEnabled) once at startup. After that, use the
// exported styles and helper functions freely.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Brand / primary
	Red    = lipgloss.Color("#B91C1C")
	Orange = lipgloss.Color("#F97316")

	// Semantic
	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#FACC15")

	// Neutral
	Dim    = lipgloss.Color("#6B7280")
	Subtle = lipgloss.Color("#374151")
)

var (
	// Title is used for top-level headings.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Red).
		PaddingBottom(1)

	// Success style for positive confirmations.
	Success = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	// Warning style for non-fatal alerts.
	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	// Error style for error messages.
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// DimText is used for hints and secondary info.
	DimText = lipgloss.NewStyle().
		Foreground(Dim)

	// Code style for inline identifiers like port names and versions.
	Code = lipgloss.NewStyle().
		Foreground(Orange)

	// TableHeader styles table column headers.
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Orange).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Subtle)
)

// Banner returns the tdl ASCII banner.
func Banner() string {
	banner := `
 _       _ _
| |_  __| | |
|  _|/ _` + "`" + ` | |
 \__|\__,_|_|`

	return lipgloss.NewStyle().Foreground(Red).Bold(true).Render(banner)
}

// Enabled tracks whether styles should render ANSI output.
// When false, all styles degrade to plain text.
var Enabled = true

// Init configures the style package. Call once at startup.
func Init(colorEnabled bool) {
	Enabled = colorEnabled
	if !colorEnabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SuccessIcon returns a themed check mark.
func SuccessIcon() string {
	if Enabled {
		return Success.Render("✓")
	}
	return "OK"
}

// ErrorIcon returns a themed X mark.
func ErrorIcon() string {
	if Enabled {
		return Error.Render("✗")
	}
	return "ERROR"
}

// WarningIcon returns a themed warning indicator.
func WarningIcon() string {
	if Enabled {
		return Warning.Render("!")
	}
	return "WARN"
}

// Hint renders a "next step" hint message.
func Hint(msg string) string {
	return DimText.Render("→ " + msg)
}
