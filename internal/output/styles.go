package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Styles below reference these instead of inline literals.
var (
	// ColorCyan is used for identifiable nouns: module names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for added files and added diff lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for modified files.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for deleted files and removed diff lines.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (module names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (syncing, developing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusAdded     = "added"
	StatusModified  = "modified"
	StatusDeleted   = "deleted"
	StatusDeveloped = "developed"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a file status. Unknown statuses return
// an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusAdded, StatusDeveloped:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusModified:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDeleted:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 40

// FormatFileLine renders a path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}
