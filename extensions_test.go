package assetsrc

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// configurableReader is a fakeReader that supports the optional With*
// extension methods.
type configurableReader struct {
	fakeReader

	client  *http.Client
	headers http.Header
	logger  *slog.Logger
}

func (r *configurableReader) WithHTTPClient(client *http.Client) Reader {
	reader := *r
	reader.client = client

	return &reader
}

func (r *configurableReader) WithHeader(headers http.Header) Reader {
	reader := *r
	reader.headers = headers

	return &reader
}

func (r *configurableReader) WithLogger(logger *slog.Logger) Reader {
	reader := *r
	reader.logger = logger

	return &reader
}

func TestWithHTTPClientReader(t *testing.T) {
	plain := &fakeReader{id: "plain"}
	assert.Same(t, plain, WithHTTPClientReader(http.DefaultClient, plain))

	r := &configurableReader{}
	client := &http.Client{}

	configured := WithHTTPClientReader(client, r)
	assert.NotSame(t, r, configured)
	assert.Same(t, client, configured.(*configurableReader).client)
}

func TestWithHeaderReader(t *testing.T) {
	plain := &fakeReader{id: "plain"}
	assert.Same(t, plain, WithHeaderReader(http.Header{}, plain))

	r := &configurableReader{}
	headers := http.Header{"Authorization": []string{"Bearer hunter2"}}

	configured := WithHeaderReader(headers, r)
	assert.Equal(t, headers, configured.(*configurableReader).headers)
}

func TestWithLoggerReader(t *testing.T) {
	plain := &fakeReader{id: "plain"}
	assert.Same(t, plain, WithLoggerReader(slog.Default(), plain))

	r := &configurableReader{}
	logger := slog.Default()

	configured := WithLoggerReader(logger, r)
	assert.Same(t, logger, configured.(*configurableReader).logger)
}
