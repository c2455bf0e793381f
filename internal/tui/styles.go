package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by all terminal output. Styles below are the only
// place colors should be referenced so the look stays consistent.
var (
	// ColorSuccess is used for healthy states (connected, check passed).
	ColorSuccess = lipgloss.Color("42")

	// ColorCritical is used for failures (disconnected, check failed).
	ColorCritical = lipgloss.Color("196")

	// ColorWarning is used for degraded states and skipped checks.
	ColorWarning = lipgloss.Color("214")

	// ColorInfo is used for informational highlights.
	ColorInfo = lipgloss.Color("39")

	// ColorSubtle is used for de-emphasized hints and metadata.
	ColorSubtle = lipgloss.Color("241")

	// ColorSpinner is used for the loading spinner.
	ColorSpinner = lipgloss.Color("205")
)

// Shared lipgloss styles.
//
//nolint:gochecknoglobals // package-level styles are the lipgloss convention
var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	// LabelStyle renders field labels in key/value panels.
	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	// ValueStyle renders field values in key/value panels.
	ValueStyle = lipgloss.NewStyle()

	// SubtleStyle renders hints and secondary text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	// SuccessStyle renders healthy state text.
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// WarningStyle renders degraded state text.
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// CriticalStyle renders failure text.
	CriticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCritical)

	// BoxStyle draws a rounded border around panel content.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)
)

// borderPadding accounts for the box border and padding when sizing
// panel content to a terminal width.
const borderPadding = 4

// IsTTY reports whether stdout is attached to a terminal. Rendering
// falls back to plain markers when it is not.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
