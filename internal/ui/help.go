package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// RenderHelp produces the one-line help bar for bindings.
// Disabled bindings are skipped by bubbles/help.
func RenderHelp(bindings []key.Binding) string {
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	return helpModel.ShortHelpView(bindings)
}
