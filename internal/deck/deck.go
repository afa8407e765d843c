package deck

import (
	"slices"
	"strings"
)

// Metadata holds the optional presentation fields from the metadata block.
// A nil field means the key was not present.
type Metadata struct {
	Title    *string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Author   *string `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Subtitle *string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
}

func (m Metadata) clone() Metadata {
	return Metadata{
		Title:    cloneString(m.Title),
		Author:   cloneString(m.Author),
		Subtitle: cloneString(m.Subtitle),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Value returns the field value, or "" when it is absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Slide is one screen of content: a header line followed by its body lines,
// exactly as they appear in the document.
type Slide struct {
	lines []string
	line  int // 1-based line number of the first line in the document
}

// Lines returns a copy of the slide's lines in document order.
func (s Slide) Lines() []string {
	return slices.Clone(s.lines)
}

// Len returns the number of lines in the slide.
func (s Slide) Len() int {
	return len(s.lines)
}

// Line returns the 1-based document line number where the slide begins.
func (s Slide) Line() int {
	return s.line
}

// Header returns the header line, or "" for a preamble slide.
func (s Slide) Header() string {
	if len(s.lines) == 0 || !IsHeader(s.lines[0]) {
		return ""
	}
	return s.lines[0]
}

// Level returns the number of leading '#' characters in the header.
// A preamble slide has level 0.
func (s Slide) Level() int {
	h := s.Header()
	return len(h) - len(strings.TrimLeft(h, "#"))
}

// Title returns the header text without its '#' marks.
func (s Slide) Title() string {
	return strings.TrimSpace(strings.TrimLeft(s.Header(), "#"))
}

// Text joins the slide's lines with newlines.
func (s Slide) Text() string {
	return strings.Join(s.lines, "\n")
}

// Deck is a compiled presentation. It is immutable once built by Parse.
type Deck struct {
	meta    Metadata
	hasMeta bool
	slides  []Slide
}

// Metadata returns a copy of the metadata and whether a block was present.
func (d *Deck) Metadata() (Metadata, bool) {
	return d.meta.clone(), d.hasMeta
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.slides)
}

// Slide returns the slide at index i. It panics if i is out of range.
func (d *Deck) Slide(i int) Slide {
	s := d.slides[i]
	s.lines = slices.Clone(s.lines)
	return s
}

// Slides returns a copy of all slides in document order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i := range d.slides {
		out[i] = d.Slide(i)
	}
	return out
}
