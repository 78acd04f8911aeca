// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a plain string.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// BlockSize returns the width and height of a rendered (possibly styled,
// possibly multi-line) block. ANSI escape codes are ignored.
func BlockSize(s string) (width, height int) {
	return lipgloss.Width(s), lipgloss.Height(s)
}

// Spaces returns a blank block n columns wide and h lines tall.
// Non-positive sizes yield an empty string.
func Spaces(n, h int) string {
	if n <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", n)
	if h == 1 {
		return line
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, availableWidth, "") + TruncateEllipsis
}

// PadCenterVisual centres s within targetWidth visual columns.
// Odd leftover columns go to the right. Wider strings are truncated.
func PadCenterVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}

	spacesNeeded := targetWidth - currentWidth
	left := spacesNeeded / 2
	return runewidth.FillLeft("", left) + s + runewidth.FillRight("", spacesNeeded-left)
}
