package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"deckterm/internal/config"
	"deckterm/internal/deck"
	"deckterm/internal/source"
	"deckterm/internal/ui"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		{"not a terminal", ui.ErrNotTerminal, ExitDisplay},
		{"display", ui.ErrDisplay, ExitDisplay},
		{"marked display", errors.Mark(errors.New("boom"), ui.ErrDisplay), ExitDisplay},

		{"empty deck", deck.ErrEmptyDeck, ExitDeck},
		{"malformed metadata", deck.ErrMalformedMetadata, ExitDeck},
		{"parse error", &deck.ParseError{Path: "x.md", Err: deck.ErrEmptyDeck}, ExitDeck},

		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found wrapping fs", errors.Mark(fmt.Errorf("open: %w", os.ErrNotExist), config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", config.ErrInvalid, ExitUsage},

		{"read", source.ErrRead, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		{"unknown", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitDeck, ExitDisplay}
	seen := map[int]bool{}
	for _, c := range codes {
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0..125", c)
		}
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
}

func TestPrintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	err := errors.WithHint(errors.Wrap(deck.ErrEmptyDeck, "compiling deck talk.md"), "add a line starting with '# '")
	printError(&buf, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "error: compiling deck talk.md: document contains no slides" {
		t.Errorf("unexpected error line %q", lines[0])
	}
	if lines[1] != "hint: add a line starting with '# '" {
		t.Errorf("unexpected hint line %q", lines[1])
	}
}
