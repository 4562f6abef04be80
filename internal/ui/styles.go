package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}    // Blue
	ColorSecondary = lipgloss.AdaptiveColor{Light: "244", Dark: "8"}   // Gray
	ColorTimer     = lipgloss.AdaptiveColor{Light: "3", Dark: "11"}    // Yellow
	ColorMuted     = lipgloss.AdaptiveColor{Light: "240", Dark: "245"} // Light gray
)

// Styles
var (
	// Header side boxes
	HeaderBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorPrimary)

	// Rules of the center header box
	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorTimer).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// Grid cells
	CellStyle = lipgloss.NewStyle().
			BorderForeground(ColorSecondary)

	// Help footer
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// ApplyTheme forces the light or dark palette. "auto" (or anything else)
// leaves background detection to Lip Gloss.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}
