package ui

import (
	"context"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"deckterm/internal/pty"
)

// altScreenOn is the sequence a program writes when it takes the screen.
const altScreenOn = "\x1b[?1049h"

func TestRun_DrivenThroughPTY(t *testing.T) {
	tm, err := pty.Open(pty.Size{Rows: 12, Cols: 40})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()

	m := newTestModel(t, "# First\nalpha\n# Second\nbeta\n")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, m, tea.WithInput(tm.TTY), tea.WithOutput(tm.TTY))
	}()

	if !tm.WaitFor(altScreenOn, 5*time.Second) {
		t.Fatalf("program never entered the alternate screen; output %q", tm.Output())
	}
	if err := tm.Type("x"); err != nil {
		t.Fatal(err)
	}
	if err := tm.Type("l"); err != nil {
		t.Fatal(err)
	}
	if !tm.WaitFor("beta", 5*time.Second) {
		t.Fatalf("second slide never drawn; output %q", tm.Output())
	}
	if err := tm.Type("q"); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("program did not stop after q")
	}

	if m.Controller.Cursor() != 1 {
		t.Errorf("expected cursor 1 after l, got %d", m.Controller.Cursor())
	}
	if !m.Controller.Done() {
		t.Error("expected controller in quit state")
	}
}

func TestRun_KeysInOneWrite(t *testing.T) {
	tm, err := pty.Open(pty.Size{Rows: 12, Cols: 40})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()

	m := newTestModel(t, "# First\nalpha\n# Second\nbeta\n# Third\ngamma\n")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, m, tea.WithInput(tm.TTY), tea.WithOutput(tm.TTY))
	}()

	if !tm.WaitFor(altScreenOn, 5*time.Second) {
		t.Fatalf("program never entered the alternate screen; output %q", tm.Output())
	}
	if err := tm.Type("ll"); err != nil {
		t.Fatal(err)
	}
	if !tm.WaitFor("gamma", 5*time.Second) {
		t.Fatalf("third slide never drawn; output %q", tm.Output())
	}
	if err := tm.Type("q"); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("program did not stop after q")
	}
	if m.Controller.Cursor() != 2 {
		t.Errorf("expected cursor 2 after ll, got %d", m.Controller.Cursor())
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	tm, err := pty.Open(pty.Size{Rows: 12, Cols: 40})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()

	m := newTestModel(t, "# Only\n")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, m, tea.WithInput(tm.TTY), tea.WithOutput(tm.TTY))
	}()
	if !tm.WaitFor(altScreenOn, 5*time.Second) {
		t.Fatalf("program never started; output %q", tm.Output())
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("program did not stop on cancel")
	}
}

func TestCheckTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := CheckTerminal(f, f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("regular file: expected ErrNotTerminal, got %v", err)
	}
	if err := CheckTerminal(nil, nil); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("nil: expected ErrNotTerminal, got %v", err)
	}

	tm, err := pty.Open(pty.Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()
	if err := CheckTerminal(tm.TTY, tm.TTY); err != nil {
		t.Errorf("pty: expected terminal, got %v", err)
	}
}
