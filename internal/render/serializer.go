package render

import (
	"io"
	"strconv"

	"github.com/ser1103/plainserv/http"
	"github.com/ser1103/plainserv/http/status"
)

var (
	connectionClose = []byte("Connection: close\r\n")
	contentType     = []byte("Content-Type: ")
	contentLength   = []byte("Content-Length: ")
	crlf            = []byte("\r\n")
)

// Serializer renders responses into a reusable buffer. The header block is
// written out in one piece before a single byte of the body is streamed, so
// within a connection headers always precede the body on the wire.
//
// The header order is contractual: status line, Connection: close,
// Content-Type, Content-Length, blank line. Nothing else is ever emitted.
type Serializer struct {
	buff     []byte
	fileBuff []byte
}

func NewSerializer(buffSize, fileBuffSize int) *Serializer {
	return &Serializer{
		buff:     make([]byte, 0, buffSize),
		fileBuff: make([]byte, fileBuffSize),
	}
}

// Write renders the header block of the response into w and streams the body
// right after it.
func (s *Serializer) Write(response http.Response, w io.Writer) error {
	defer s.clear()

	s.buff = append(s.buff, status.Line(response.Code)...)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, connectionClose...)
	s.buff = append(s.buff, contentType...)
	s.buff = append(s.buff, response.ContentType...)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, response.ContentLength, 10)
	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, crlf...)

	if _, err := w.Write(s.buff); err != nil {
		return err
	}

	if response.Body == nil {
		return nil
	}

	_, err := io.CopyBuffer(w, response.Body, s.fileBuff)
	return err
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
