// Package logging builds the slog loggers used by deckterm.
//
// While a presentation is on screen the terminal belongs to the renderer, so
// presentation logs go to a file or nowhere. Commands that do not take
// over the terminal log to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Config holds the configuration for creating a new logger.
type Config struct {
	Level  slog.Level
	Format Format
	Output io.Writer // defaults to os.Stderr
}

// New creates a logger with the given configuration. Text output to a
// colour-capable terminal uses Handler; otherwise slog's own handlers.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch Format(strings.ToLower(string(cfg.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(output, opts)
	default:
		if SupportsColor(output) {
			handler = NewHandler(output, opts)
			break
		}
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

// NewDiscard creates a logger that discards all output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromVerbosity maps a -v count to a level: 0 warn, 1 info, 2+ debug.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// OpenFile creates a logger appending to path. The returned closer must be
// called when logging is finished.
func OpenFile(path string, level slog.Level, format Format) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, errors.WithHint(
			errors.Wrapf(err, "opening log file %s", path),
			"check that the directory exists and is writable")
	}
	return New(Config{Level: level, Format: format, Output: f}), f, nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether w should receive ANSI colour codes. NO_COLOR
// and TERM=dumb disable colour.
func SupportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTTY(w)
}

// ConfigureColor sets fatih/color's global switch for user-facing output on w.
func ConfigureColor(w io.Writer) {
	color.NoColor = !SupportsColor(w)
}
