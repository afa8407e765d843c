// Package present owns the slide cursor and turns navigation actions into
// render requests.
//
// The controller is a state machine over cursor positions 0..n-1 plus a
// terminal quit state. It is not safe for concurrent use; the hosting event
// loop delivers one action at a time.
package present

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"deckterm/internal/deck"
)

// Frame is a render request for the slide under the cursor.
type Frame struct {
	Slide       deck.Slide
	Metadata    deck.Metadata
	HasMetadata bool
	Index       int  // 0-based cursor position
	Total       int  // number of slides in the deck
	First       bool // true only for the initial render
}

// Renderer draws a frame. A returned error is fatal to the presentation.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

// Render implements Renderer.
func (f RendererFunc) Render(fr Frame) error { return f(fr) }

// Observer is notified of every applied action other than Ignore.
type Observer interface {
	Transition(a Action, from, to int)
}

// Outcome reports the effect of an action.
type Outcome struct {
	Action  Action
	Changed bool // cursor moved and a frame was rendered
	Quit    bool // the host loop should stop
}

// Controller holds the deck and the cursor.
type Controller struct {
	deck      *deck.Deck
	renderer  Renderer
	keys      Keymap
	observers []Observer
	logger    *slog.Logger
	cursor    int
	quit      bool
	started   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeymap replaces the default keymap.
func WithKeymap(k Keymap) Option {
	return func(c *Controller) { c.keys = k }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller positioned on the first slide.
func New(d *deck.Deck, r Renderer, opts ...Option) (*Controller, error) {
	if d.Len() == 0 {
		return nil, deck.ErrEmptyDeck
	}
	if r == nil {
		return nil, errors.New("present: nil renderer")
	}
	c := &Controller{
		deck:     d,
		renderer: r,
		keys:     DefaultKeymap(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Cursor returns the index of the current slide.
func (c *Controller) Cursor() int { return c.cursor }

// Len returns the number of slides.
func (c *Controller) Len() int { return c.deck.Len() }

// Done reports whether Quit has been applied.
func (c *Controller) Done() bool { return c.quit }

// Keymap returns the active keymap.
func (c *Controller) Keymap() Keymap { return c.keys }

// Start renders the first slide. It must be called once before any action.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}
	c.started = true
	return c.render(true)
}

// Redraw renders the current slide again, e.g. after a terminal resize.
func (c *Controller) Redraw() error {
	if c.quit {
		return nil
	}
	if !c.started {
		return c.Start()
	}
	return c.render(false)
}

// HandleKey maps key through the keymap and applies the resulting action.
func (c *Controller) HandleKey(key string) (Outcome, error) {
	return c.Apply(c.keys.Lookup(key))
}

// Apply performs one transition. Next and Previous saturate at the ends of
// the deck; a frame is rendered only when the cursor moves. After Quit every
// action reports Quit without effect.
func (c *Controller) Apply(a Action) (Outcome, error) {
	if c.quit {
		return Outcome{Action: a, Quit: true}, nil
	}

	from := c.cursor
	switch a {
	case Next:
		c.cursor = min(c.cursor+1, c.deck.Len()-1)
	case Previous:
		c.cursor = max(c.cursor-1, 0)
	case Quit:
		c.quit = true
	default:
		return Outcome{Action: Ignore}, nil
	}

	c.logger.Debug("transition", "action", a.String(), "from", from, "to", c.cursor)
	for _, o := range c.observers {
		o.Transition(a, from, c.cursor)
	}

	out := Outcome{Action: a, Quit: c.quit, Changed: c.cursor != from}
	if out.Changed {
		if err := c.render(false); err != nil {
			return out, err
		}
	}
	return out, nil
}

func (c *Controller) render(first bool) error {
	meta, ok := c.deck.Metadata()
	fr := Frame{
		Slide:       c.deck.Slide(c.cursor),
		Metadata:    meta,
		HasMetadata: ok,
		Index:       c.cursor,
		Total:       c.deck.Len(),
		First:       first,
	}
	if err := c.renderer.Render(fr); err != nil {
		return errors.Wrapf(err, "rendering slide %d/%d", c.cursor+1, c.deck.Len())
	}
	return nil
}
