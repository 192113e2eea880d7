package tracesrc

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the instrumentation applied by [New].
type Option func(*config)

type config struct {
	tp          trace.TracerProvider
	propagators propagation.TextMapPropagator
	attrs       []attribute.KeyValue
}

// WithTracerProvider sets the provider the instrumented source creates its
// tracer from. Without it, the global provider is used (see
// [otel.GetTracerProvider]).
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *config) {
		if tp != nil {
			cfg.tp = tp
		}
	}
}

// WithPropagators sets the propagators used to extract trace information
// from incoming contexts. Without it, the global ones are used.
func WithPropagators(propagators propagation.TextMapPropagator) Option {
	return func(cfg *config) {
		if propagators != nil {
			cfg.propagators = propagators
		}
	}
}

// WithAttributes adds attributes to every span the instrumented source
// records, alongside the per-operation ones. Useful for tagging spans with
// details only the caller knows, such as the identifier a source is
// registered under.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(cfg *config) {
		cfg.attrs = append(cfg.attrs, attrs...)
	}
}
