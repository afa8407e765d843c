// Package trace exports deck compilation and presentation navigation as
// OpenTelemetry spans. Export is enabled only when
// OTEL_EXPORTER_OTLP_ENDPOINT is set; a nil *Exporter is a valid no-op.
package trace

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"deckterm/internal/deck"
)

const tracerName = "deckterm/present"

// Attribute keys.
const (
	AttrPath   = attribute.Key("deckterm.deck.path")
	AttrSlides = attribute.Key("deckterm.deck.slides")
	AttrTitle  = attribute.Key("deckterm.deck.title")
	AttrAction = attribute.Key("deckterm.action")
	AttrFrom   = attribute.Key("deckterm.cursor.from")
	AttrTo     = attribute.Key("deckterm.cursor.to")
)

// Exporter exports spans to an OTLP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	// The exporter reads the endpoint URL, including its scheme, from the
	// environment.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "creating OTLP exporter")
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "deckterm"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporter wraps an existing provider. Tests pass one backed by a span
// recorder.
func NewExporter(provider *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// Compile runs parse inside a "deck.compile" span.
func (e *Exporter) Compile(ctx context.Context, path string, parse func() (*deck.Deck, error)) (*deck.Deck, error) {
	if e == nil {
		return parse()
	}

	_, span := e.tracer.Start(ctx, "deck.compile", oteltrace.WithAttributes(AttrPath.String(path)))
	defer span.End()

	d, err := parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(AttrSlides.Int(d.Len()))
	return d, nil
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
