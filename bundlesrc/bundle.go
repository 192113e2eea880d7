// Package bundlesrc provides an asset source backed by any fs.FS, most
// usefully an embed.FS holding assets compiled into the binary. It lets
// bundled assets be served through the same reader contract as remote
// sources, so hosts can switch between the two without code changes.
package bundlesrc

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/hairyhenderson/go-assetsrc"
)

type bundleSource struct {
	fsys fs.FS
}

// New returns an asset source (an assetsrc.Reader) serving the contents of
// fsys. To scope the source to a subtree of fsys, wrap it with fs.Sub
// first.
func New(fsys fs.FS) (assetsrc.Reader, error) {
	if fsys == nil {
		return nil, errors.New("filesystem must not be nil")
	}

	return &bundleSource{fsys: fsys}, nil
}

// Register registers fsys in reg as the asset source identified by id. The
// same filesystem is shared by every reader the registry hands out.
func Register(reg assetsrc.Registry, id string, fsys fs.FS) error {
	src, err := New(fsys)
	if err != nil {
		return err
	}

	reg.Register(id, assetsrc.WrappedReader(src))

	return nil
}

// MustRegister is like Register, but panics on invalid configuration. It
// simplifies source setup at program startup.
func MustRegister(reg assetsrc.Registry, id string, fsys fs.FS) {
	if err := Register(reg, id, fsys); err != nil {
		panic(err)
	}
}

var _ assetsrc.Reader = (*bundleSource)(nil)

// Read opens the bundled asset at the given path.
func (s *bundleSource) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.fsys.Open(name)
}

// ReadMeta opens the sidecar metadata bundled beside the asset at the
// given path.
func (s *bundleSource) ReadMeta(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.fsys.Open(name + assetsrc.MetaSuffix)
}

// ReadDirectory lists the entries below the given path, each prefixed with
// that path.
func (s *bundleSource) ReadDirectory(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, name)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, path.Join(name, entry.Name()))
	}

	return paths, nil
}

// IsDirectory reports whether the given path is a directory in the bundle.
func (s *bundleSource) IsDirectory(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fi, err := fs.Stat(s.fsys, name)
	if err != nil {
		return false, err
	}

	return fi.IsDir(), nil
}
