package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

var (
	// ErrDisplay marks failures to draw to or drive the terminal.
	ErrDisplay = errors.New("display error")

	// ErrNotTerminal is returned when input or output is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// CheckTerminal verifies that in and out are both terminals.
func CheckTerminal(in, out *os.File) error {
	for _, f := range []*os.File{in, out} {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			name := "<nil>"
			if f != nil {
				name = f.Name()
			}
			return errors.WithHint(errors.Wrapf(ErrNotTerminal, "%s", name),
				"run deckterm in an interactive terminal, or use 'deckterm inspect' to print the deck")
		}
	}
	return nil
}

// Run drives m until the user quits. The program owns the terminal for the
// duration: raw mode and the alternate screen are entered on start and
// restored on every return path, including panics inside the loop.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Mark(errors.Wrap(err, "running presentation"), ErrDisplay)
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
