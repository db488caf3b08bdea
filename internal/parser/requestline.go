package parser

import (
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/ser1103/plainserv/http"
	"github.com/ser1103/plainserv/http/method"
	"github.com/ser1103/plainserv/http/proto"
	"github.com/ser1103/plainserv/http/status"
)

// ParseRequestLine validates a single request line of the form
// "<METHOD> <PATH> <VERSION>" and extracts the requested path from it.
//
// The method token is judged first, so an unsupported method wins over a
// malformed rest of the line. The path token is returned verbatim: no
// normalization and no percent-decoding happens here or anywhere later.
func ParseRequestLine(line []byte) (http.Request, error) {
	tokens := strings.Fields(uf.B2S(line))
	if len(tokens) == 0 {
		return http.Request{}, status.ErrBadRequest
	}

	m := method.Parse(tokens[0])
	if m == method.Unknown {
		return http.Request{}, status.ErrMethodNotImplemented
	}

	if len(tokens) != 3 {
		return http.Request{}, status.ErrBadRequest
	}

	p := proto.FromToken(tokens[2])
	if p == proto.Unknown {
		return http.Request{}, status.ErrBadRequest
	}

	return http.Request{
		Method: m,
		Path:   tokens[1],
		Proto:  p,
	}, nil
}
