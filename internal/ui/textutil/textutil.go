// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of spaces a tab expands to, matching lipgloss.
const TabWidth = 4

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a string that may contain
// ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending it with an
// ellipsis when anything was cut.
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

	runes := []rune(s)
	result := make([]rune, 0, len(runes))
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > availableWidth {
			break
		}
		result = append(result, r)
		w += rw
	}
	return string(result) + TruncateEllipsis
}

// ExpandTabs replaces each tab with TabWidth spaces so width measurement
// agrees with what lipgloss draws.
func ExpandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabWidth))
}

// Clip cuts s to at most maxWidth columns without adding an ellipsis.
// Slide body lines are clipped rather than marked so their text stays as written.
func Clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// Center pads s on the left so it sits in the middle of width columns.
// Strings wider than width are truncated.
func Center(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft("", (width-w)/2) + s
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating if
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}

// PadLeftVisual pads s on the left with spaces to targetWidth columns,
// truncating if it is already wider.
func PadLeftVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft("", targetWidth-currentWidth) + s
}
