package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"deckterm/internal/config"
	"deckterm/internal/deck"
	"deckterm/internal/source"
	"deckterm/internal/ui"
)

// Exit codes for the deckterm CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Presentation ended by the user
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, or config
	ExitIO      = 3 // Document or log file unreadable
	ExitDeck    = 4 // Document did not compile into a deck
	ExitDisplay = 5 // Terminal missing or rendering failed
)

// ErrUsage marks command-line mistakes reported by cobra.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is, so wrapped and marked errors map like their sentinels.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ui.ErrNotTerminal) ||
		errors.Is(err, ui.ErrDisplay) {
		return ExitDisplay
	}

	if errors.Is(err, deck.ErrEmptyDeck) ||
		errors.Is(err, deck.ErrMalformedMetadata) {
		return ExitDeck
	}

	// Config lookups can wrap fs.ErrNotExist; check them before I/O.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalid) {
		return ExitUsage
	}

	if errors.Is(err, source.ErrRead) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}

// printError writes err and any attached hints to w.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	_, _ = red.Fprint(w, "error: ")
	_, _ = fmt.Fprintln(w, err.Error())
	for _, hint := range errors.GetAllHints(err) {
		_, _ = yellow.Fprint(w, "hint: ")
		_, _ = fmt.Fprintln(w, hint)
	}
}
