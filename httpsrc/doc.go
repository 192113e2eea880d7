// Package httpsrc provides a read-only asset source that fetches assets
// from an HTTP server.
//
// This source only supports single-asset operations since there is no
// facility in HTTP for directory listings: ReadDirectory always returns an
// empty listing and IsDirectory always reports false, each emitting an
// error-level diagnostic rather than failing.
//
// # Usage
//
// To use this source, call [New] with a base URL. All reads from the source
// are relative to this base URL. Only the schemes "http" and "https" are
// supported.
//
// To scope the source to a specific path, use that path on the URL. For
// example, for a source that can only read sub-paths of
// "https://example.com/assets", you could use a URL like:
//
//	https://example.com/assets/
//
// Note: when scoping URLs to specific paths, the URL should end in "/".
//
// # Escaped path separators
//
// Hosts commonly treat "/" in an asset path as a directory boundary, which
// makes it impossible to address server paths containing one. The second
// argument to [New] configures an escape sequence that is rewritten to a
// literal "/" - every occurrence - before the path is resolved against the
// base URL:
//
//	src, _ := httpsrc.New(base, "++")
//
//	// fetches <base>/models/tree.glb
//	f, _ := src.Read(ctx, "models++tree.glb")
//
// Pass "" to disable rewriting.
//
// Asset paths are otherwise opaque: characters with reserved meanings in
// URLs, percent signs included, are escaped on the wire and reach the
// server as the literal text they are.
//
// # Errors
//
// Errors returned by this source are of type [io/fs.PathError] and carry
// the resolved path. A missing asset (HTTP 404) satisfies
// errors.Is(err, fs.ErrNotExist); any other failure - transport errors,
// non-2xx statuses, or a body that could not be fully transferred - is a
// generic I/O error.
//
// # Adding custom HTTP headers
//
// This source supports adding custom HTTP headers with the
// [assetsrc.WithHeaderReader] extension. This can be useful for setting
// authentication headers, or for setting a user-agent.
//
// For example, to set the user-agent to "my-app":
//
//	src, _ := httpsrc.New(base, "")
//
//	src = assetsrc.WithHeaderReader(http.Header{
//		"User-Agent": []string{"my-app"},
//	}, src)
//
// # Using your own HTTP client
//
// By default, this source uses a client that times out requests after 5
// seconds. The [assetsrc.WithHTTPClientReader] extension allows you to use
// a different client, for example one with a custom transport:
//
//	src, _ := httpsrc.New(base, "")
//
//	client := &http.Client{Transport: myCustomTransport}
//
//	src = assetsrc.WithHTTPClientReader(client, src)
//
// # Logging
//
// Diagnostics - notably the one emitted for unsupported directory
// operations - go to [log/slog.Default] unless a logger is set with the
// [assetsrc.WithLoggerReader] extension.
package httpsrc
