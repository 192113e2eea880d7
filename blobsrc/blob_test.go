package blobsrc

import (
	"context"
	"io/fs"
	"testing"

	"github.com/hairyhenderson/go-assetsrc"
	"github.com/hairyhenderson/go-assetsrc/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func setupBucket(t *testing.T) *blob.Bucket {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	files := map[string]string{
		"models/tree.glb":      "gltf bytes here",
		"models/tree.glb.meta": `{"format": "gltf"}`,
		"models/sub/leaf.glb":  "leafy",
		"readme.txt":           "assets live here",
	}

	for key, content := range files {
		require.NoError(t, bucket.WriteAll(ctx, key, []byte(content), nil))
	}

	return bucket
}

func TestBlobSource(t *testing.T) {
	ctx := context.Background()

	src, err := New(setupBucket(t))
	require.NoError(t, err)

	f, err := src.Read(ctx, "models/tree.glb")
	require.NoError(t, err)
	assert.Equal(t, "gltf bytes here", tests.Body(t, f))

	f, err = src.ReadMeta(ctx, "models/tree.glb")
	require.NoError(t, err)
	assert.JSONEq(t, `{"format": "gltf"}`, tests.Body(t, f))

	_, err = src.Read(ctx, "models/missing.glb")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = src.ReadMeta(ctx, "readme.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBlobSource_Directories(t *testing.T) {
	ctx := context.Background()

	src, err := New(setupBucket(t))
	require.NoError(t, err)

	entries, err := src.ReadDirectory(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"models", "readme.txt"}, entries)

	entries, err = src.ReadDirectory(ctx, "models")
	require.NoError(t, err)
	assert.Equal(t, []string{"models/sub", "models/tree.glb", "models/tree.glb.meta"}, entries)

	// trailing slashes are tolerated
	entries, err = src.ReadDirectory(ctx, "models/")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// an empty prefix just lists nothing
	entries, err = src.ReadDirectory(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, entries)

	isDir, err := src.IsDirectory(ctx, "models")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = src.IsDirectory(ctx, "models/sub")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = src.IsDirectory(ctx, "readme.txt")
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = src.IsDirectory(ctx, "")
	require.NoError(t, err)
	assert.True(t, isDir)

	_, err = src.IsDirectory(ctx, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBlobSource_IsDirectorySiblingPrefix(t *testing.T) {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	// "textures-v2.zip" sorts before "textures/" ('-' < '/'), so a
	// one-entry listing of the bare name sees the sibling first
	files := map[string]string{
		"texture":            "singular",
		"textures-v2.zip":    "zipped",
		"textures/brick.png": "brick bytes",
	}

	for key, content := range files {
		require.NoError(t, bucket.WriteAll(ctx, key, []byte(content), nil))
	}

	src, err := New(bucket)
	require.NoError(t, err)

	isDir, err := src.IsDirectory(ctx, "textures")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = src.IsDirectory(ctx, "texture")
	require.NoError(t, err)
	assert.False(t, isDir)

	// longer keys sharing the name as a prefix don't make it exist
	_, err = src.IsDirectory(ctx, "textures-v")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = src.IsDirectory(ctx, "textures-v1.zip")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBlobSource_PrefixedBucket(t *testing.T) {
	ctx := context.Background()

	bucket := setupBucket(t)

	src, err := New(blob.PrefixedBucket(bucket, "models/"))
	require.NoError(t, err)

	b, err := assetsrc.ReadAll(ctx, src, "tree.glb")
	require.NoError(t, err)
	assert.Equal(t, "gltf bytes here", string(b))
}

func TestNew_NilBucket(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	reg := assetsrc.NewRegistry()

	err := Register(reg, "cloud", setupBucket(t))
	require.NoError(t, err)

	src, err := reg.Lookup("cloud")
	require.NoError(t, err)

	b, err := assetsrc.ReadAll(ctx, src, "readme.txt")
	require.NoError(t, err)
	assert.Equal(t, "assets live here", string(b))

	assert.Panics(t, func() {
		MustRegister(reg, "boom", nil)
	})
}
