package http

import (
	"bufio"
	"bytes"
	"log"
	"net"
	"strconv"

	"github.com/ser1103/plainserv/http"
	"github.com/ser1103/plainserv/http/mime"
	"github.com/ser1103/plainserv/http/status"
	"github.com/ser1103/plainserv/internal/parser"
	"github.com/ser1103/plainserv/internal/render"
	"github.com/ser1103/plainserv/internal/resolver"
	"github.com/ser1103/plainserv/settings"
)

// notFoundFallback is self-contained on purpose: the 404 response must stay
// functional even when the root directory itself is missing or empty. Every
// other error response is loaded as a page from the root.
const notFoundFallback = "<html>" +
	"<head><title>Error</title></head>" +
	"<body>" +
	"<h2>Error: 404 Not Found</h2>" +
	"<p>The resource that you requested does not exist on this server.</p>" +
	"</body>" +
	"</html>"

// Server serves a single request per connection: one request line in, one
// response out, connection closed. Each instance belongs to exactly one
// connection goroutine.
type Server struct {
	settings   settings.Settings
	serializer *render.Serializer
}

func NewServer(s settings.Settings) *Server {
	return &Server{
		settings:   s,
		serializer: render.NewSerializer(s.TCP.ReadBuffSize, s.TCP.FileBuffSize),
	}
}

// Handle walks the connection through parse, resolve, respond. Every failure
// is converted into the matching canned error response at the point it is
// detected; nothing propagates past here. The connection is closed on every
// exit path.
func (s *Server) Handle(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("%s: closing connection: %v", conn.RemoteAddr(), err)
		}
	}()

	line, err := s.readRequestLine(conn)
	if err != nil {
		// the socket could not even be read, so there is nobody to answer
		log.Printf("%s: reading request line: %v", conn.RemoteAddr(), err)
		return
	}

	log.Printf("%s: %s", conn.RemoteAddr(), line)

	request, err := parser.ParseRequestLine(line)
	if err != nil {
		s.respondError(conn, status.CodeOf(err))
		return
	}

	resolved, err := resolver.Resolve(request.Path, s.settings.FS.Root, s.settings.FS.IndexPage)
	if err != nil {
		s.respondError(conn, status.CodeOf(err))
		return
	}
	defer resolved.Close()

	s.send(conn, http.WithFile(status.OK, mime.OfFile(resolved.Name), resolved.File, resolved.Size))
}

// readRequestLine reads lines off the connection until the first non-empty
// one, which is treated as the request line. Whatever the client sends after
// it is ignored: the buffer is simply never consumed further.
func (s *Server) readRequestLine(conn net.Conn) ([]byte, error) {
	reader := bufio.NewReaderSize(conn, s.settings.TCP.ReadBuffSize)

	for {
		line, err := reader.ReadBytes('\n')
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 {
			return line, nil
		}

		if err != nil {
			return nil, err
		}
	}
}

func (s *Server) respondError(conn net.Conn, code status.Code) {
	if code == status.NotFound {
		s.send(conn, http.WithBody(status.NotFound, mime.HTML, []byte(notFoundFallback)))
		return
	}

	page := "/" + strconv.Itoa(int(code)) + ".html"
	resolved, err := resolver.Resolve(page, s.settings.FS.Root, s.settings.FS.IndexPage)
	if err != nil {
		// the error page itself cannot be found, so the connection is closed
		// with no response: there is nothing sensible left to write
		log.Printf("%s: loading error page %s: %v", conn.RemoteAddr(), page, err)
		return
	}
	defer resolved.Close()

	s.send(conn, http.WithFile(code, mime.OfFile(resolved.Name), resolved.File, resolved.Size))
}

func (s *Server) send(conn net.Conn, response http.Response) {
	if err := s.serializer.Write(response, conn); err != nil {
		log.Printf("%s: writing response: %v", conn.RemoteAddr(), err)
	}
}
