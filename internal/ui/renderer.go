package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"deckterm/internal/deck"
	"deckterm/internal/present"
	"deckterm/internal/ui/textutil"
)

// Terminal size assumed until the first tea.WindowSizeMsg arrives.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// FrameRenderer draws frames into a string for the Bubble Tea view.
// It implements present.Renderer.
type FrameRenderer struct {
	styles     Styles
	keys       KeyMap
	showFooter bool

	width  int
	height int
	body   viewport.Model
	frame  string
}

// Ensure FrameRenderer implements present.Renderer.
var _ present.Renderer = (*FrameRenderer)(nil)

// NewFrameRenderer creates a renderer with the default terminal size.
func NewFrameRenderer(styles Styles, keys KeyMap, showFooter bool) *FrameRenderer {
	return &FrameRenderer{
		styles:     styles,
		keys:       keys,
		showFooter: showFooter,
		width:      DefaultWidth,
		height:     DefaultHeight,
		body:       viewport.New(DefaultWidth, DefaultHeight),
	}
}

// Resize sets the drawing area. Non-positive sizes are ignored.
func (r *FrameRenderer) Resize(width, height int) {
	if width > 0 {
		r.width = width
	}
	if height > 0 {
		r.height = height
	}
}

// Size returns the current drawing area.
func (r *FrameRenderer) Size() (width, height int) {
	return r.width, r.height
}

// View returns the most recently rendered frame.
func (r *FrameRenderer) View() string {
	return r.frame
}

// Render implements present.Renderer. It lays out the title bar, the slide
// body clipped to the remaining height, and the footer.
func (r *FrameRenderer) Render(f present.Frame) error {
	header := r.titleBar(f)
	footer := r.footer(f)

	bodyHeight := r.height - len(header) - len(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	r.body.Width = r.width
	r.body.Height = bodyHeight
	r.body.SetContent(strings.Join(r.slideLines(f.Slide), "\n"))
	r.body.GotoTop()

	parts := make([]string, 0, 3)
	if len(header) > 0 {
		parts = append(parts, strings.Join(header, "\n"))
	}
	parts = append(parts, r.body.View())
	if len(footer) > 0 {
		parts = append(parts, strings.Join(footer, "\n"))
	}
	r.frame = strings.Join(parts, "\n")
	return nil
}

// titleBar returns the centered title and subtitle followed by a blank line,
// or nothing when the deck has no title.
func (r *FrameRenderer) titleBar(f present.Frame) []string {
	if !f.HasMetadata || f.Metadata.Title == nil || *f.Metadata.Title == "" {
		return nil
	}
	lines := []string{r.styles.Title.Render(textutil.Center(*f.Metadata.Title, r.width))}
	if sub := deck.Value(f.Metadata.Subtitle); sub != "" {
		lines = append(lines, r.styles.Subtitle.Render(textutil.Center(sub, r.width)))
	}
	return append(lines, "")
}

// slideLines styles the slide's lines. Leading blank lines are skipped and
// every line is clipped to the frame width.
func (r *FrameRenderer) slideLines(s deck.Slide) []string {
	lines := s.Lines()
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	out := make([]string, 0, len(lines)-start)
	for _, l := range lines[start:] {
		clipped := textutil.Clip(textutil.ExpandTabs(l), r.width)
		if deck.IsHeader(l) {
			level := len(l) - len(strings.TrimLeft(l, "#"))
			out = append(out, r.styles.header(level).Render(clipped))
			continue
		}
		out = append(out, r.styles.Body.Render(clipped))
	}
	return out
}

// footer returns the status line (author left, position right) and the key
// help line, or nothing when the footer is disabled.
func (r *FrameRenderer) footer(f present.Frame) []string {
	if !r.showFooter {
		return nil
	}
	pos := fmt.Sprintf("%d/%d", f.Index+1, f.Total)
	author := ""
	if f.HasMetadata {
		author = deck.Value(f.Metadata.Author)
	}
	left := r.styles.Footer.Render(textutil.Truncate(author, max(r.width-textutil.VisualWidth(pos)-1, 0)))
	right := r.styles.Footer.Render(textutil.PadLeftVisual(pos, r.width-textutil.VisualWidthStyled(left)))
	return []string{left + right, RenderKeybindHelp(r.keys, r.styles, r.width)}
}
