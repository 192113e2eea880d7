// Package filesrc wraps os.DirFS to provide an asset source for local
// directory trees, addressed by file:// URLs or plain paths.
package filesrc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"

	"github.com/hairyhenderson/go-assetsrc"
)

type fileSource struct {
	root fs.FS
}

// New returns an asset source (an assetsrc.Reader) for the tree of files
// rooted at the directory named by u. This source is suitable for use with
// the 'file:' URL scheme, and interacts with the local filesystem.
//
// This is effectively a wrapper for os.DirFS.
func New(u *url.URL) (assetsrc.Reader, error) {
	if u == nil {
		return nil, errors.New("URL must not be nil")
	}

	return &fileSource{root: os.DirFS(pathForDirFS(u))}, nil
}

// Register registers an asset source for the directory tree at dirURL in
// reg, under the identifier id. The directory must exist at registration
// time; a plain path (no scheme) is accepted as well as a file:// URL.
func Register(reg assetsrc.Registry, id, dirURL string) error {
	u, err := url.Parse(dirURL)
	if err != nil {
		return fmt.Errorf("asset source %q: %w", id, err)
	}

	if u.Scheme != "" && u.Scheme != "file" {
		return fmt.Errorf("asset source %q: invalid URL scheme %q", id, u.Scheme)
	}

	root := pathForDirFS(u)

	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("asset source %q: %w", id, err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("asset source %q: not a directory: %s", id, root)
	}

	reg.Register(id, func() (assetsrc.Reader, error) {
		return New(u)
	})

	return nil
}

// MustRegister is like Register, but panics on invalid configuration. It
// simplifies source setup at program startup.
func MustRegister(reg assetsrc.Registry, id, dirURL string) {
	if err := Register(reg, id, dirURL); err != nil {
		panic(err)
	}
}

// return the correct filesystem path for the given URL. Supports Windows paths
// and UNCs as well
func pathForDirFS(u *url.URL) string {
	if u.Path == "" {
		return ""
	}

	root := u.Path
	if len(root) >= 3 {
		if root[0] == '/' && root[2] == ':' {
			root = root[1:]
		}
	}

	// a file:// URL with a host part should be interpreted as a UNC
	switch u.Host {
	case ".":
		root = "//./" + root
	case "":
		// nothin'
	default:
		root = "//" + u.Host + root
	}

	return root
}

var _ assetsrc.Reader = (*fileSource)(nil)

// Read opens the asset at the given path below the source root.
func (s *fileSource) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.root.Open(name)
}

// ReadMeta opens the sidecar metadata beside the asset at the given path.
func (s *fileSource) ReadMeta(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.root.Open(name + assetsrc.MetaSuffix)
}

// ReadDirectory lists the entries below the given path, each prefixed with
// that path.
func (s *fileSource) ReadDirectory(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.root, name)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, path.Join(name, entry.Name()))
	}

	return paths, nil
}

// IsDirectory reports whether the given path is a directory below the
// source root.
func (s *fileSource) IsDirectory(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fi, err := fs.Stat(s.root, name)
	if err != nil {
		return false, err
	}

	return fi.IsDir(), nil
}
