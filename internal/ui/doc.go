// Package ui provides shared primitives for the odometer's Bubble Tea views.
//
//   - View: a screen or widget with its own model, update and view (Elm-style)
//   - Styles: the shared colour palette and lipgloss styles
//   - RenderHelp: a compact key binding bar built on bubbles/help
package ui
