// Package pty provides a pseudo-terminal for driving the presentation loop
// without a real terminal attached.
package pty

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Terminal is a pty pair. The program under test reads and writes TTY;
// the caller types into and reads from the master side.
type Terminal struct {
	Master *os.File
	TTY    *os.File

	mu     sync.Mutex
	output bytes.Buffer
	done   chan struct{}
}

// Open allocates a pty of the given size and starts collecting everything
// the program writes to it.
func Open(size Size) (*Terminal, error) {
	master, tty, err := pty.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening pty")
	}
	if err := pty.Setsize(master, &pty.Winsize{Rows: size.Rows, Cols: size.Cols}); err != nil {
		_ = master.Close()
		_ = tty.Close()
		return nil, errors.Wrap(err, "sizing pty")
	}
	t := &Terminal{Master: master, TTY: tty, done: make(chan struct{})}
	go t.collect()
	return t, nil
}

// collect drains the master so the program never blocks on a full buffer.
func (t *Terminal) collect() {
	defer close(t.done)
	buf := make([]byte, 4096)
	for {
		n, err := t.Master.Read(buf)
		if n > 0 {
			t.mu.Lock()
			t.output.Write(buf[:n])
			t.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Output returns everything written to the terminal so far.
func (t *Terminal) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.output.String()
}

// WaitFor polls the output until it contains s or the timeout elapses.
func (t *Terminal) WaitFor(s string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(t.Output(), s) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return strings.Contains(t.Output(), s)
}

// Type writes keys as if typed by the user.
func (t *Terminal) Type(keys string) error {
	_, err := io.WriteString(t.Master, keys)
	return err
}

// Resize changes the terminal dimensions.
func (t *Terminal) Resize(size Size) error {
	return pty.Setsize(t.Master, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Close releases both ends of the pty.
func (t *Terminal) Close() error {
	errTTY := t.TTY.Close()
	errMaster := t.Master.Close()
	<-t.done
	return errors.CombineErrors(errTTY, errMaster)
}
