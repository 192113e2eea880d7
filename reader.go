package assetsrc

import (
	"context"
	"io"
)

// MetaSuffix is appended to an asset's path to address its sidecar metadata.
const MetaSuffix = ".meta"

// Reader is the read-only view of a single asset source. Asset paths are
// given as strings relative to the source's root; what a path means beyond
// that is up to the individual source.
//
// Implementations must be safe for concurrent use.
type Reader interface {
	// Read returns the contents of the asset at the given path as a
	// stream. The caller must close it.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// ReadMeta returns the contents of the sidecar metadata for the asset
	// at the given path. The caller must close it.
	ReadMeta(ctx context.Context, path string) (io.ReadCloser, error)

	// ReadDirectory lists the paths of the entries below the given path.
	// Sources with no notion of directories return an empty list.
	ReadDirectory(ctx context.Context, path string) ([]string, error)

	// IsDirectory reports whether the given path refers to a directory.
	// Sources with no notion of directories report false.
	IsDirectory(ctx context.Context, path string) (bool, error)
}

// ReadAll reads the full contents of the asset at path from r, closing the
// stream when done.
func ReadAll(ctx context.Context, r Reader, path string) ([]byte, error) {
	rc, err := r.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// ReadAllMeta reads the full sidecar metadata for the asset at path from r,
// closing the stream when done.
func ReadAllMeta(ctx context.Context, r Reader, path string) ([]byte, error) {
	rc, err := r.ReadMeta(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
