package tracesrc

import (
	"context"
	"io"
)

// wrapStream wraps an asset stream so that each read, and the final close,
// is recorded as a span of its own, parented to the operation that opened
// the stream.
func (s *traceSource) wrapStream(ctx context.Context, rc io.ReadCloser, name string) io.ReadCloser {
	return &traceStream{ctx: ctx, rc: rc, src: s, name: name}
}

type traceStream struct {
	ctx  context.Context
	rc   io.ReadCloser
	src  *traceSource
	name string
}

var _ io.ReadCloser = (*traceStream)(nil)

func (s *traceStream) Read(p []byte) (int, error) {
	_, span := s.src.tracer.Start(s.ctx, "asset.Read", s.src.attribs(s.name))
	defer span.End()

	n, err := s.rc.Read(p)

	span.SetAttributes(BytesRead(n))

	return n, recordError(span, err)
}

func (s *traceStream) Close() error {
	_, span := s.src.tracer.Start(s.ctx, "asset.Close", s.src.attribs(s.name))
	defer span.End()

	return recordError(span, s.rc.Close())
}
