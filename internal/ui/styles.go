package ui

import (
	"github.com/charmbracelet/lipgloss"

	"deckterm/internal/theme"
)

// Styles contains the style definitions used to draw a frame.
type Styles struct {
	Title    lipgloss.Style // Bold accent - title bar
	Subtitle lipgloss.Style // Secondary - line under the title
	H1       lipgloss.Style // Level 1 header lines
	H2       lipgloss.Style // Level 2 header lines
	H3       lipgloss.Style // Level 3+ header lines
	Body     lipgloss.Style // Body lines, verbatim text colour
	Footer   lipgloss.Style // Author and position
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles derives frame styles from a theme palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Secondary),
		H1: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		H2: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		H3: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Tertiary),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// header returns the style for a header of the given level.
func (s Styles) header(level int) lipgloss.Style {
	switch {
	case level <= 1:
		return s.H1
	case level == 2:
		return s.H2
	default:
		return s.H3
	}
}
