package pty

import (
	"testing"
	"time"

	"golang.org/x/term"
)

func TestOpen_IsTerminal(t *testing.T) {
	tm, err := Open(Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()

	if !term.IsTerminal(int(tm.TTY.Fd())) {
		t.Error("expected TTY side to be a terminal")
	}
	w, h, err := term.GetSize(int(tm.TTY.Fd()))
	if err != nil {
		t.Fatalf("GetSize: %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("size: expected 80x24, got %dx%d", w, h)
	}

	if err := tm.Resize(Size{Rows: 10, Cols: 40}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	w, h, _ = term.GetSize(int(tm.TTY.Fd()))
	if w != 40 || h != 10 {
		t.Errorf("resized: expected 40x10, got %dx%d", w, h)
	}
}

func TestTerminal_CollectsOutput(t *testing.T) {
	tm, err := Open(Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tm.Close()

	if _, err := tm.TTY.WriteString("frame drawn"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !tm.WaitFor("frame drawn", 2*time.Second) {
		t.Errorf("expected output to be collected, got %q", tm.Output())
	}
}
