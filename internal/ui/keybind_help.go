package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

// RenderKeybindHelp produces the one-line key help shown in the footer.
func RenderKeybindHelp(km KeyMap, styles Styles, width int) string {
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpDesc
	return h.View(km)
}
