package assetsrc

import (
	"log/slog"
	"net/http"
)

type withHTTPClienter interface {
	WithHTTPClient(client *http.Client) Reader
}

// WithHTTPClientReader injects an HTTP client into the reader r, if the
// reader supports it (i.e. has a WithHTTPClient method).
func WithHTTPClientReader(client *http.Client, r Reader) Reader {
	if cr, ok := r.(withHTTPClienter); ok {
		return cr.WithHTTPClient(client)
	}

	return r
}

type withHeaderer interface {
	WithHeader(headers http.Header) Reader
}

// WithHeaderReader injects custom HTTP headers into the reader r, if the
// reader supports it (i.e. has a WithHeader method).
func WithHeaderReader(headers http.Header, r Reader) Reader {
	if hr, ok := r.(withHeaderer); ok {
		return hr.WithHeader(headers)
	}

	return r
}

type withLoggerer interface {
	WithLogger(logger *slog.Logger) Reader
}

// WithLoggerReader injects a logger into the reader r, if the reader
// supports it (i.e. has a WithLogger method). Readers log their
// diagnostics with slog.Default otherwise.
func WithLoggerReader(logger *slog.Logger, r Reader) Reader {
	if lr, ok := r.(withLoggerer); ok {
		return lr.WithLogger(logger)
	}

	return r
}
