package deck

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// MetadataDelimiter opens and closes the metadata block.
const MetadataDelimiter = "---"

// headerPattern matches an ATX header: one or more '#', whitespace, then text.
var headerPattern = regexp.MustCompile(`^#+\s+\S`)

// Preamble selects what happens to content before the first header.
type Preamble string

const (
	// PreambleDiscard drops content before the first header.
	PreambleDiscard Preamble = "discard"
	// PreambleSlide keeps non-blank content before the first header as an
	// implicit leading slide without a header.
	PreambleSlide Preamble = "slide"
)

// ParsePreamble converts a configuration string into a Preamble policy.
func ParsePreamble(s string) (Preamble, error) {
	switch p := Preamble(strings.ToLower(strings.TrimSpace(s))); p {
	case PreambleDiscard, PreambleSlide:
		return p, nil
	case "":
		return PreambleDiscard, nil
	default:
		return "", errors.Newf("unknown preamble policy %q (valid: %s, %s)", s, PreambleDiscard, PreambleSlide)
	}
}

type options struct {
	preamble Preamble
}

// Option configures Parse.
type Option func(*options)

// WithPreamble sets the policy for content before the first header.
func WithPreamble(p Preamble) Option {
	return func(o *options) {
		o.preamble = p
	}
}

// IsHeader reports whether line is an ATX header line.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// Parse compiles document text into a Deck.
//
// It fails with ErrMalformedMetadata when the document opens a metadata
// block that is never closed, and with ErrEmptyDeck when no header line
// exists. No partial deck is returned on error.
func Parse(text string, opts ...Option) (*Deck, error) {
	o := options{preamble: PreambleDiscard}
	for _, opt := range opts {
		opt(&o)
	}

	lines := splitLines(text)

	meta, hasMeta, consumed, err := extractMetadata(lines)
	if err != nil {
		return nil, err
	}

	preamble, slides := segment(lines[consumed:], consumed+1)
	if len(slides) == 0 {
		return nil, errors.WithHint(ErrEmptyDeck, `start each slide with a header line such as "# Title"`)
	}
	if o.preamble == PreambleSlide && !isBlank(preamble.lines) {
		slides = append([]Slide{preamble}, slides...)
	}

	return &Deck{
		meta:    meta,
		hasMeta: hasMeta,
		slides:  slides,
	}, nil
}

// splitLines splits text on "\n". A final newline terminates the last line
// rather than starting an empty one, and a trailing "\r" is treated as part
// of the line terminator.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// extractMetadata reads a leading metadata block. It returns the number of
// lines consumed, including both delimiters.
func extractMetadata(lines []string) (Metadata, bool, int, error) {
	var meta Metadata
	if len(lines) == 0 || lines[0] != MetadataDelimiter {
		return meta, false, 0, nil
	}

	for i := 1; i < len(lines); i++ {
		if lines[i] != MetadataDelimiter {
			continue
		}
		for _, l := range lines[1:i] {
			key, value, ok := strings.Cut(l, ":")
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch strings.TrimSpace(key) {
			case "title":
				meta.Title = &value
			case "author":
				meta.Author = &value
			case "subtitle":
				meta.Subtitle = &value
			}
		}
		return meta, true, i + 1, nil
	}

	err := errors.Wrapf(ErrMalformedMetadata, "block opened on line 1 has no closing %q", MetadataDelimiter)
	return Metadata{}, false, 0, errors.WithHint(err, `close the metadata block with a line containing only "---"`)
}

// segment splits lines into slides on header boundaries. first is the
// document line number of lines[0]. Lines before the first header are
// returned as a headerless preamble slide.
func segment(lines []string, first int) (Slide, []Slide) {
	preamble := Slide{line: first}
	var slides []Slide
	for i, l := range lines {
		if IsHeader(l) {
			slides = append(slides, Slide{lines: []string{l}, line: first + i})
			continue
		}
		if len(slides) == 0 {
			preamble.lines = append(preamble.lines, l)
			continue
		}
		cur := &slides[len(slides)-1]
		cur.lines = append(cur.lines, l)
	}
	return preamble, slides
}

func isBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
