package http

import (
	"bytes"
	"io"

	"github.com/ser1103/plainserv/http/mime"
	"github.com/ser1103/plainserv/http/status"
)

// Response is built once per connection, serialized and discarded.
// ContentLength always equals the exact number of bytes Body will yield.
type Response struct {
	Code          status.Code
	ContentType   mime.MIME
	ContentLength int64
	Body          io.Reader
}

// WithFile returns a response streaming the passed reader as its body. The
// reader stays owned by the caller; closing it after serialization is the
// caller's job.
func WithFile(code status.Code, contentType mime.MIME, body io.Reader, size int64) Response {
	return Response{
		Code:          code,
		ContentType:   contentType,
		ContentLength: size,
		Body:          body,
	}
}

// WithBody returns a response carrying an in-memory body.
func WithBody(code status.Code, contentType mime.MIME, body []byte) Response {
	return Response{
		Code:          code,
		ContentType:   contentType,
		ContentLength: int64(len(body)),
		Body:          bytes.NewReader(body),
	}
}
