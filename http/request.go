package http

import (
	"github.com/ser1103/plainserv/http/method"
	"github.com/ser1103/plainserv/http/proto"
)

// Request is what's left of a request line after validation: exactly three
// tokens. It lives for a single connection and is discarded right after the
// path is resolved.
type Request struct {
	Method method.Method
	// Path is the second token of the request line, verbatim. No
	// normalization and no percent-decoding is applied.
	Path  string
	Proto proto.Proto
}
