package httpsrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hairyhenderson/go-assetsrc"
	"github.com/hairyhenderson/go-assetsrc/internal"
	"golang.org/x/time/rate"
)

// Separator is the path separator that the configured escape sequence
// stands in for.
const Separator = "/"

// requestTimeout bounds every request end-to-end: connection, redirects,
// and body transfer.
const requestTimeout = 5 * time.Second

type httpSource struct {
	base    *url.URL
	client  *http.Client
	headers http.Header
	logger  *slog.Logger

	// dirLog throttles the diagnostic for unsupported directory
	// operations, which hosts tend to issue once per asset
	dirLog *rate.Limiter

	fakeSep string
}

// New provides an asset source (an assetsrc.Reader) for the HTTP (or HTTPS)
// endpoint rooted at base. All reads are made with the GET method, relative
// to this base URL. fakeSep is the escape sequence rewritten to "/" in
// asset paths before they are resolved; pass "" if no rewriting is wanted.
//
// Requests time out after 5 seconds. To change that, supply a client with a
// different timeout using [assetsrc.WithHTTPClientReader].
func New(base *url.URL, fakeSep string) (assetsrc.Reader, error) {
	if base == nil {
		return nil, errors.New("base URL must not be nil")
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme %q", base.Scheme)
	}

	if base.Host == "" {
		return nil, fmt.Errorf("base URL %q must include a host", base)
	}

	return &httpSource{
		base:    base,
		client:  &http.Client{Timeout: requestTimeout},
		headers: http.Header{},
		logger:  slog.Default(),
		dirLog:  rate.NewLimiter(rate.Every(time.Second), 1),
		fakeSep: fakeSep,
	}, nil
}

// Register registers an asset source for baseURL in reg, under the
// identifier id. The URL is validated here so that a misconfigured source
// fails at registration rather than on first read.
func Register(reg assetsrc.Registry, id, baseURL, fakeSep string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("asset source %q: %w", id, err)
	}

	if _, err := New(u, fakeSep); err != nil {
		return fmt.Errorf("asset source %q: %w", id, err)
	}

	reg.Register(id, func() (assetsrc.Reader, error) {
		return New(u, fakeSep)
	})

	return nil
}

// MustRegister is like Register, but panics on invalid configuration. It
// simplifies source setup at program startup.
func MustRegister(reg assetsrc.Registry, id, baseURL, fakeSep string) {
	if err := Register(reg, id, baseURL, fakeSep); err != nil {
		panic(err)
	}
}

var (
	_ assetsrc.Reader           = (*httpSource)(nil)
	_ internal.WithHTTPClienter = (*httpSource)(nil)
	_ internal.WithHeaderer     = (*httpSource)(nil)
	_ internal.WithLoggerer     = (*httpSource)(nil)
)

func (s httpSource) URL() string {
	return s.base.String()
}

func (s *httpSource) WithHTTPClient(client *http.Client) assetsrc.Reader {
	if client == nil {
		return s
	}

	src := *s
	src.client = client

	return &src
}

func (s *httpSource) WithHeader(headers http.Header) assetsrc.Reader {
	if headers == nil {
		return s
	}

	src := *s
	if len(src.headers) == 0 {
		src.headers = headers
	} else {
		src.headers = src.headers.Clone()
		for k, vs := range headers {
			for _, v := range vs {
				src.headers.Add(k, v)
			}
		}
	}

	return &src
}

func (s *httpSource) WithLogger(logger *slog.Logger) assetsrc.Reader {
	if logger == nil {
		return s
	}

	src := *s
	src.logger = logger

	return &src
}

// Read fetches the asset at the given path relative to the base URL.
func (s *httpSource) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fetch(ctx, "read", s.resolve(path))
}

// ReadMeta fetches the sidecar metadata for the asset at the given path.
// The escape sequence is resolved first, so it is never interpreted within
// the metadata suffix itself.
func (s *httpSource) ReadMeta(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fetch(ctx, "readmeta", s.resolve(path)+assetsrc.MetaSuffix)
}

// ReadDirectory returns an empty listing: HTTP has no facility for
// directory listings. The call itself never fails, so hosts iterating a
// mixed set of sources don't error out on this one.
func (s *httpSource) ReadDirectory(_ context.Context, path string) ([]string, error) {
	s.unsupported("readdir", path)

	return []string{}, nil
}

// IsDirectory reports false for every path, as directories are not
// supported over HTTP. The call itself never fails.
func (s *httpSource) IsDirectory(_ context.Context, path string) (bool, error) {
	s.unsupported("isdir", path)

	return false, nil
}

// resolve rewrites every occurrence of the escape sequence to the literal
// path separator. Plain string replacement - no hierarchy interpretation,
// no URL escaping.
func (s *httpSource) resolve(path string) string {
	if s.fakeSep == "" {
		return path
	}

	return strings.ReplaceAll(path, s.fakeSep, Separator)
}

// fetch GETs the given resolved path relative to the base URL and returns
// the response body. The body is drained eagerly so that transfer failures
// are reported here, not later from the returned stream.
func (s *httpSource) fetch(ctx context.Context, op, path string) (io.ReadCloser, error) {
	u := internal.JoinURL(s.base, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: err}
	}

	req.Header = s.headers

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: fmt.Errorf("fetching asset: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &fs.PathError{Op: op, Path: path, Err: httpError(resp.StatusCode)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: path, Err: fmt.Errorf("getting bytes: %w", err)}
	}

	return io.NopCloser(bytes.NewReader(b)), nil
}

// unsupported emits the error-level diagnostic for directory operations,
// throttled by dirLog.
func (s *httpSource) unsupported(op, path string) {
	if s.dirLog.Allow() {
		s.logger.Error("directory operations are not supported by http asset sources",
			"op", op, "path", path)
	}
}

// httpError represents a failed request with its HTTP status code
func httpError(statusCode int) error {
	return httpErr{statusCode: statusCode}
}

type httpErr struct {
	statusCode int
}

func (e httpErr) Error() string {
	return fmt.Sprintf("bad status code: %d", e.statusCode)
}

func (e httpErr) StatusCode() int {
	return e.statusCode
}
