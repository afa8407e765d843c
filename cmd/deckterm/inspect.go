package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"deckterm/internal/deck"
	"deckterm/internal/ui/textutil"
)

// Output formats accepted by inspect.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// outline is the machine-readable summary printed by inspect.
type outline struct {
	Path     string         `json:"path" yaml:"path" toml:"path"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Author   string         `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Slides   []slideOutline `json:"slides" yaml:"slides" toml:"slides"`
}

type slideOutline struct {
	Index int    `json:"index" yaml:"index" toml:"index"`
	Level int    `json:"level" yaml:"level" toml:"level"`
	Title string `json:"title" yaml:"title" toml:"title"`
	Line  int    `json:"line" yaml:"line" toml:"line"`
	Lines int    `json:"lines" yaml:"lines" toml:"lines"`
}

func newInspectCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Compile a deck and print its outline",
		Long: `Compile FILE exactly as a presentation would and print the metadata and
one line per slide. Useful for checking a deck without a terminal.`,
		Example: `  deckterm inspect talk.md
  deckterm inspect talk.md --format yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case formatText, formatJSON, formatYAML, formatTOML:
			default:
				return errors.WithHint(
					errors.Mark(errors.Newf("unknown format %q", format), ErrUsage),
					"valid formats: text, json, yaml, toml")
			}

			d, err := c.compile(cmd.Context(), nil, args[0])
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), newOutline(args[0], d), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml, toml")
	return cmd
}

func newOutline(path string, d *deck.Deck) outline {
	o := outline{Path: path}
	if meta, ok := d.Metadata(); ok {
		o.Title = deck.Value(meta.Title)
		o.Subtitle = deck.Value(meta.Subtitle)
		o.Author = deck.Value(meta.Author)
	}
	for i, s := range d.Slides() {
		o.Slides = append(o.Slides, slideOutline{
			Index: i + 1,
			Level: s.Level(),
			Title: s.Title(),
			Line:  s.Line(),
			Lines: s.Len(),
		})
	}
	return o
}

func writeOutline(w io.Writer, o outline, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(o), "encoding json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	case formatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(o), "encoding toml")
	default:
		return writeText(w, o)
	}
}

func writeText(w io.Writer, o outline) error {
	var b strings.Builder
	fmt.Fprintf(&b, "path:     %s\n", o.Path)
	if o.Title != "" {
		fmt.Fprintf(&b, "title:    %s\n", o.Title)
	}
	if o.Subtitle != "" {
		fmt.Fprintf(&b, "subtitle: %s\n", o.Subtitle)
	}
	if o.Author != "" {
		fmt.Fprintf(&b, "author:   %s\n", o.Author)
	}
	fmt.Fprintf(&b, "slides:   %d\n", len(o.Slides))

	width := 0
	for _, s := range o.Slides {
		width = max(width, textutil.VisualWidth(s.Title)+s.Level+1)
	}
	for _, s := range o.Slides {
		head := strings.Repeat("#", s.Level) + " " + s.Title
		fmt.Fprintf(&b, "%3d  %s  line %d, %d lines\n",
			s.Index, textutil.PadRightVisual(head, width), s.Line, s.Lines)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
