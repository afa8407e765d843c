package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"deckterm/internal/deck"
	"deckterm/internal/present"
)

// Session is a "presentation" span that records every navigation action as a
// span event. It implements present.Observer; a nil *Session ignores calls.
type Session struct {
	span oteltrace.Span
	last int
}

var _ present.Observer = (*Session)(nil)

// StartSession opens the presentation span for d.
func (e *Exporter) StartSession(ctx context.Context, path string, d *deck.Deck) *Session {
	if e == nil {
		return nil
	}
	attrs := []attribute.KeyValue{AttrPath.String(path), AttrSlides.Int(d.Len())}
	if meta, ok := d.Metadata(); ok && meta.Title != nil {
		attrs = append(attrs, AttrTitle.String(*meta.Title))
	}
	_, span := e.tracer.Start(ctx, "presentation", oteltrace.WithAttributes(attrs...))
	return &Session{span: span}
}

// Transition implements present.Observer.
func (s *Session) Transition(a present.Action, from, to int) {
	if s == nil {
		return
	}
	s.last = to
	s.span.AddEvent("navigate", oteltrace.WithAttributes(
		AttrAction.String(a.String()),
		AttrFrom.Int(from),
		AttrTo.Int(to),
	))
}

// End closes the span, recording the final cursor position.
func (s *Session) End() {
	if s == nil {
		return
	}
	s.span.SetAttributes(AttrTo.Int(s.last))
	s.span.End()
}
