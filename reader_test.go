package assetsrc

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves synthetic content echoing the requested path.
type fakeReader struct {
	id string
}

var _ Reader = (*fakeReader)(nil)

func (r *fakeReader) Read(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(r.id + ":" + path)), nil
}

func (r *fakeReader) ReadMeta(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(r.id + ":" + path + MetaSuffix)), nil
}

func (r *fakeReader) ReadDirectory(_ context.Context, _ string) ([]string, error) {
	return []string{}, nil
}

func (r *fakeReader) IsDirectory(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	r := &fakeReader{id: "models"}

	b, err := ReadAll(ctx, r, "tree.glb")
	require.NoError(t, err)
	assert.Equal(t, []byte("models:tree.glb"), b)
}

func TestReadAllMeta(t *testing.T) {
	ctx := context.Background()
	r := &fakeReader{id: "models"}

	b, err := ReadAllMeta(ctx, r, "tree.glb")
	require.NoError(t, err)
	assert.Equal(t, []byte("models:tree.glb.meta"), b)
}
