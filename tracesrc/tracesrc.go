// Package tracesrc instruments an asset source for distributed tracing.
// The OpenTelemetry API is supported.
//
// This is not an asset source implementation of its own, but rather a
// wrapper around an existing source: every operation on the returned
// reader is recorded as a span, with the inner source doing the work.
// Streams returned by Read and ReadMeta are instrumented too, with a span
// per read and one for the final close.
//
// # Usage
//
// To use this source, call [New] with the source to instrument.
//
// In order to report traces, an OTel [trace.TracerProvider] must first be
// set up. The details of this are outside the scope of this module, but see
// the assetcli example in this repository's examples directory for one
// approach.
//
// A [trace.TracerProvider] can optionally be passed to [New] using
// [WithTracerProvider], and [WithAttributes] attaches extra attributes to
// every span the source records.
//
// # Propagation
//
// By default, this source will use the global
// [propagation.TextMapPropagator] to extract trace information from the
// context. This can be overridden by passing a
// [propagation.TextMapPropagator] to [WithPropagators].
package tracesrc

import (
	"context"
	"fmt"
	"io"

	"github.com/hairyhenderson/go-assetsrc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type traceSource struct {
	source      assetsrc.Reader
	tracer      trace.Tracer
	propagators propagation.TextMapPropagator
	attrs       []attribute.KeyValue
}

const tracerName = "github.com/hairyhenderson/go-assetsrc/tracesrc"

// New returns an asset source (an assetsrc.Reader) that instruments the
// given source, adding a trace span for each operation. Options can be
// provided to configure the behaviour of the instrumented source.
func New(source assetsrc.Reader, opts ...Option) (assetsrc.Reader, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.tp == nil {
		cfg.tp = otel.GetTracerProvider()
	}

	if cfg.propagators == nil {
		cfg.propagators = otel.GetTextMapPropagator()
	}

	tsrc := traceSource{
		source:      source,
		tracer:      cfg.tp.Tracer(tracerName),
		propagators: cfg.propagators,
		attrs:       cfg.attrs,
	}

	return &tsrc, nil
}

type urlReader interface {
	URL() string
}

var _ assetsrc.Reader = (*traceSource)(nil)

func (s *traceSource) attribs(name string) trace.SpanStartEventOption {
	attrs := []attribute.KeyValue{Path(name), Type(fmt.Sprintf("%T", s.source))}

	if ur, ok := s.source.(urlReader); ok {
		attrs = append(attrs, BaseURL(ur.URL()))
	}

	return trace.WithAttributes(append(attrs, s.attrs...)...)
}

func (s *traceSource) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	ctx, span := s.tracer.Start(ctx, "source.Read", s.attribs(name))
	defer span.End()

	f, err := s.source.Read(ctx, name)
	if err != nil {
		return f, recordError(span, err)
	}

	return s.wrapStream(ctx, f, name), nil
}

func (s *traceSource) ReadMeta(ctx context.Context, name string) (io.ReadCloser, error) {
	ctx, span := s.tracer.Start(ctx, "source.ReadMeta", s.attribs(name))
	defer span.End()

	f, err := s.source.ReadMeta(ctx, name)
	if err != nil {
		return f, recordError(span, err)
	}

	return s.wrapStream(ctx, f, name), nil
}

func (s *traceSource) ReadDirectory(ctx context.Context, name string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "source.ReadDirectory", s.attribs(name))
	defer span.End()

	entries, err := s.source.ReadDirectory(ctx, name)

	span.SetAttributes(DirEntries(len(entries)))

	return entries, recordError(span, err)
}

func (s *traceSource) IsDirectory(ctx context.Context, name string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "source.IsDirectory", s.attribs(name))
	defer span.End()

	isDir, err := s.source.IsDirectory(ctx, name)

	span.SetAttributes(IsDir(isDir))

	return isDir, recordError(span, err)
}

// recordError records the given error on the span, and returns it. It does
// not set the span's status to error.
func recordError(span trace.Span, err error) error {
	span.RecordError(err)

	return err
}
