// Package theme defines the colour palettes available to the slide renderer.
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

// Default is the theme used when none is configured.
const Default = "catppuccin-mocha"

// ErrUnknown is returned by ByName for an unregistered theme.
var ErrUnknown = errors.New("unknown theme")

// Theme is a named set of base colours.
type Theme struct {
	Name  string
	Text  lipgloss.Color
	Teal  lipgloss.Color
	Sky   lipgloss.Color
	Peach lipgloss.Color
	Red   lipgloss.Color
	Green lipgloss.Color
}

// Palette maps base colours to the roles the renderer draws with.
type Palette struct {
	Text      lipgloss.Color // body lines
	Primary   lipgloss.Color // level 1 headers
	Secondary lipgloss.Color // level 2 headers, subtitle
	Tertiary  lipgloss.Color // deeper headers
	Accent    lipgloss.Color // title bar
	Muted     lipgloss.Color // footer
}

// Palette returns the role colours for t.
func (t Theme) Palette() Palette {
	return Palette{
		Text:      t.Text,
		Primary:   t.Teal,
		Secondary: t.Sky,
		Tertiary:  t.Green,
		Accent:    t.Red,
		Muted:     t.Peach,
	}
}

var registry = map[string]Theme{
	"catppuccin-latte": {
		Name:  "Catppuccin Latte",
		Text:  "#4c4f69",
		Teal:  "#179299",
		Sky:   "#04a5e5",
		Peach: "#fe640b",
		Red:   "#d20f39",
		Green: "#40a02b",
	},
	"catppuccin-mocha": {
		Name:  "Catppuccin Mocha",
		Text:  "#cdd6f4",
		Teal:  "#94e2d5",
		Sky:   "#89dceb",
		Peach: "#fab387",
		Red:   "#f38ba8",
		Green: "#a6e3a1",
	},
	"one-dark": {
		Name:  "One Dark",
		Text:  "#abb2bf",
		Teal:  "#56b6c2",
		Sky:   "#61afef",
		Peach: "#e5c07b",
		Red:   "#e06c75",
		Green: "#98c379",
	},
}

// Key normalizes a theme name: lowercase, spaces replaced with hyphens.
func Key(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// ByName looks up a theme by key or display name ("One Dark", "one-dark").
func ByName(name string) (Theme, error) {
	if t, ok := registry[Key(name)]; ok {
		return t, nil
	}
	return Theme{}, errors.WithHintf(errors.Wrapf(ErrUnknown, "%q", name),
		"valid themes: %s", strings.Join(Names(), ", "))
}

// Names returns the registered theme keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
