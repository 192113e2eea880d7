package internal

import (
	"log/slog"
	"net/http"

	"github.com/hairyhenderson/go-assetsrc"
)

// Optional capabilities a reader implementation may support. Source packages
// assert against these at compile time; the root package's With* helpers
// discover them at runtime.

// WithHTTPClienter is a Reader that can be configured with a custom http.Client
type WithHTTPClienter interface {
	WithHTTPClient(client *http.Client) assetsrc.Reader
}

// WithHeaderer is a Reader that can be configured to send a custom http.Header
type WithHeaderer interface {
	WithHeader(headers http.Header) assetsrc.Reader
}

// WithLoggerer is a Reader that can be configured with a custom logger for
// its diagnostics
type WithLoggerer interface {
	WithLogger(logger *slog.Logger) assetsrc.Reader
}
