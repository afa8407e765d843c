package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func plainHandler(t *testing.T, buf *bytes.Buffer, level slog.Level) *slog.Logger {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	return slog.New(NewHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	plainHandler(t, &buf, slog.LevelDebug).Info("deck compiled", "slides", 3)

	out := buf.String()
	for _, want := range []string{"INFO ", "deck compiled", "slides=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected trailing newline, got %q", out)
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := plainHandler(t, &buf, slog.LevelWarn)
	l.Info("quiet")
	l.Warn("loud")

	if strings.Contains(buf.String(), "quiet") {
		t.Errorf("info record should be filtered, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN  loud") {
		t.Errorf("expected warn record, got %q", buf.String())
	}
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := plainHandler(t, &buf, slog.LevelInfo).
		With("path", "talk.md").
		WithGroup("cursor")
	l.Info("navigate", "from", 0, "to", 1, slog.Group("key", "name", "l"))

	out := buf.String()
	for _, want := range []string{"path=talk.md", "cursor.from=0", "cursor.to=1", "cursor.key.name=l"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}
