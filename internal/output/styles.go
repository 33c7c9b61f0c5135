package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these names rather than inline lipgloss.Color literals.
var (
	// ColorVueGreen is the Vue brand green, used for project names and paths.
	ColorVueGreen = lipgloss.Color("#42D392")

	// ColorVueBlue ends the banner gradient.
	ColorVueBlue = lipgloss.Color("#647EFF")

	// ColorYellow marks files merged into an existing file.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorVueGreen)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleCommand styles shell commands in next-step hints.
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(ColorVueGreen)
)

// Styles groups the styles used by renderers.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
	Noun  lipgloss.Style
	Error lipgloss.Style
}

var defaultStyles = Styles{
	Bold:  lipgloss.NewStyle().Bold(true),
	Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
	Noun:  StyleNoun,
	Error: lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
}

// GetStyles returns the renderer styles.
func GetStyles() Styles {
	return defaultStyles
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNextSteps renders the commands to run after scaffolding, one per
// line and indented.
func FormatNextSteps(commands ...string) string {
	out := StyleSummary.Render("Done. Now run:") + "\n\n"
	for _, c := range commands {
		out += "  " + StyleCommand.Render(c) + "\n"
	}
	return out
}
