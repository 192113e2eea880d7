// Package tests contains helpers shared by the test suites in this module.
package tests

import (
	"io"
	"net/url"
	"testing"
)

// MustURL parses s, panicking on error. For tests and examples only.
func MustURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// Body drains and closes rc, returning the contents as a string.
func Body(t *testing.T, rc io.ReadCloser) string {
	t.Helper()

	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}

	return string(b)
}
