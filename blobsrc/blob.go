package blobsrc

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/hairyhenderson/go-assetsrc"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type blobSource struct {
	bucket *blob.Bucket
}

// New returns an asset source (an assetsrc.Reader) backed by the given blob
// storage bucket. Asset paths are bucket keys. To scope the source to a key
// prefix, wrap the bucket with blob.PrefixedBucket first.
//
// The bucket remains owned by the caller, who is responsible for closing it
// once the source is no longer in use.
func New(bucket *blob.Bucket) (assetsrc.Reader, error) {
	if bucket == nil {
		return nil, errors.New("bucket must not be nil")
	}

	return &blobSource{bucket: bucket}, nil
}

// Register registers the bucket in reg as the asset source identified by
// id. The bucket is shared by every reader the registry hands out.
func Register(reg assetsrc.Registry, id string, bucket *blob.Bucket) error {
	src, err := New(bucket)
	if err != nil {
		return err
	}

	reg.Register(id, assetsrc.WrappedReader(src))

	return nil
}

// MustRegister is like Register, but panics on invalid configuration. It
// simplifies source setup at program startup.
func MustRegister(reg assetsrc.Registry, id string, bucket *blob.Bucket) {
	if err := Register(reg, id, bucket); err != nil {
		panic(err)
	}
}

var _ assetsrc.Reader = (*blobSource)(nil)

// Read opens the blob at the given path.
func (s *blobSource) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: convertError(err)}
	}

	return r, nil
}

// ReadMeta opens the sidecar metadata blob beside the asset at the given
// path.
func (s *blobSource) ReadMeta(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, name+assetsrc.MetaSuffix, nil)
	if err != nil {
		return nil, &fs.PathError{Op: "readmeta", Path: name + assetsrc.MetaSuffix, Err: convertError(err)}
	}

	return r, nil
}

// ReadDirectory lists the keys directly below the given path. Directories
// are synthesized from key prefixes, the way blob stores themselves do it.
func (s *blobSource) ReadDirectory(ctx context.Context, name string) ([]string, error) {
	iter := s.bucket.List(&blob.ListOptions{Delimiter: "/", Prefix: dirPrefix(name)})

	paths := []string{}

	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: convertError(err)}
		}

		paths = append(paths, strings.TrimSuffix(obj.Key, "/"))
	}

	return paths, nil
}

// IsDirectory reports whether the given path names a directory. Children
// are listed first, under the suffixed prefix, so a sibling key that shares
// the name as a prefix cannot shadow the directory. A second listing
// without the suffix then tells a plain blob apart from a missing name.
func (s *blobSource) IsDirectory(ctx context.Context, name string) (bool, error) {
	if name == "" || name == "." {
		return true, nil
	}

	opts := &blob.ListOptions{Delimiter: "/", Prefix: dirPrefix(name)}

	list, _, err := s.bucket.ListPage(ctx, blob.FirstPageToken, 1, opts)
	if err != nil {
		return false, &fs.PathError{Op: "isdir", Path: name, Err: convertError(err)}
	}

	if len(list) > 0 {
		return true, nil
	}

	key := strings.TrimSuffix(name, "/")
	opts = &blob.ListOptions{Delimiter: "/", Prefix: key}

	list, _, err = s.bucket.ListPage(ctx, blob.FirstPageToken, 1, opts)
	if err != nil {
		return false, &fs.PathError{Op: "isdir", Path: name, Err: convertError(err)}
	}

	// the key itself sorts before any longer key it prefixes, so the blob
	// is found if and only if it is the first entry
	if len(list) == 1 && list[0].Key == key {
		return false, nil
	}

	return false, &fs.PathError{Op: "isdir", Path: name, Err: fs.ErrNotExist}
}

// dirPrefix converts a directory path into the key prefix that lists its
// children: the root is "", everything else gets a trailing slash.
func dirPrefix(name string) string {
	if name == "" || name == "." {
		return ""
	}

	return strings.TrimSuffix(name, "/") + "/"
}

// convertError maps gocloud's error codes onto the fs sentinel errors, so
// callers can use errors.Is instead of driver-specific checks.
func convertError(err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return fs.ErrNotExist
	}

	return err
}
