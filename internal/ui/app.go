package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"deckterm/internal/deck"
	"deckterm/internal/present"
	"deckterm/internal/theme"
)

// FrameView is a present.Renderer whose output the model displays.
type FrameView interface {
	present.Renderer
	Resize(width, height int)
	View() string
}

// Options configures a presentation model.
type Options struct {
	Theme      theme.Theme
	ShowFooter bool
	Keymap     present.Keymap // nil means present.DefaultKeymap()
	Logger     *slog.Logger
	Observers  []present.Observer
}

// Model is the Bubble Tea model hosting a present.Controller. Each key
// message is one controller transition; View shows the last rendered frame.
type Model struct {
	Controller *present.Controller
	Frames     FrameView
	err        error
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New builds the renderer and controller for d and renders the first slide.
func New(d *deck.Deck, opts Options) (*Model, error) {
	keys := opts.Keymap
	if keys == nil {
		keys = present.DefaultKeymap()
	}
	r := NewFrameRenderer(NewStyles(opts.Theme.Palette()), NewKeyMap(keys), opts.ShowFooter)

	copts := []present.Option{present.WithKeymap(keys)}
	if opts.Logger != nil {
		copts = append(copts, present.WithLogger(opts.Logger))
	}
	for _, o := range opts.Observers {
		copts = append(copts, present.WithObserver(o))
	}
	ctrl, err := present.New(d, r, copts...)
	if err != nil {
		return nil, err
	}
	return NewModel(ctrl, r)
}

// NewModel wraps an existing controller and its frame view. The controller
// is started, so the first frame is ready before the program runs.
func NewModel(ctrl *present.Controller, frames FrameView) (*Model, error) {
	if err := ctrl.Start(); err != nil {
		return nil, errors.Mark(err, ErrDisplay)
	}
	return &Model{Controller: ctrl, Frames: frames}, nil
}

// Err returns the render error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Frames.Resize(msg.Width, msg.Height)
		if err := m.Controller.Redraw(); err != nil {
			return m.fail(err)
		}
	case tea.KeyMsg:
		for _, k := range keyStrokes(msg) {
			out, err := m.Controller.HandleKey(k)
			if err != nil {
				return m.fail(err)
			}
			if out.Quit {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// keyStrokes splits msg into individual key presses. Printable characters
// read together arrive as one KeyRunes message; each rune is its own press.
func keyStrokes(msg tea.KeyMsg) []string {
	if msg.Type != tea.KeyRunes || msg.Alt {
		return []string{msg.String()}
	}
	keys := make([]string, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		keys = append(keys, string(r))
	}
	return keys
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.Controller.Done() || m.err != nil {
		return ""
	}
	return m.Frames.View()
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = errors.Mark(err, ErrDisplay)
	return m, tea.Quit
}
