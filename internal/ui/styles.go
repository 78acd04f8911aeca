package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for key hints, borders
	ColorDanger    = "196" // Red - for debug outlines
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDebugView = "226" // Yellow - debug background of the widget
	ColorDebugRow  = "34"  // Green - debug background of the track row
	ColorDebugUnit = "46"  // Bright green - outline of the unit in the window
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for main titles
	Box      lipgloss.Style // Standard box with rounded border
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Help/hint text
	HelpKey  lipgloss.Style // Key in the help bar
	DebugBox lipgloss.Style // Widget container in debug mode
	DebugRow lipgloss.Style // Track row in debug mode
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	DebugBox: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorDebugView)),
	DebugRow: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorDebugRow)),
}
