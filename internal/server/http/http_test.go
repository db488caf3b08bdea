package http

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/ser1103/plainserv/settings"
	"github.com/stretchr/testify/require"
)

// exchange runs Handle on the server side of a pipe, writes raw as the
// client and returns everything the server sent until it closed the
// connection.
func exchange(t *testing.T, s settings.Settings, raw string) string {
	t.Helper()

	client, server := net.Pipe()
	done := make(chan struct{})

	go func() {
		NewServer(settings.Fill(s)).Handle(server)
		close(done)
	}()

	go func() {
		_, _ = client.Write([]byte(raw))
	}()

	response, err := io.ReadAll(client)
	require.NoError(t, err)
	<-done

	return string(response)
}

func newRoot(t *testing.T, pages map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	return root
}

func TestHandleOK(t *testing.T) {
	content := uniuri.NewLen(20)
	root := newRoot(t, map[string]string{"index.html": content})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "GET /index.html HTTP/1.1\r\n")

	require.Equal(t,
		"HTTP/1.1 200 OK\r\n"+
			"Connection: close\r\n"+
			"Content-Type: text/html\r\n"+
			"Content-Length: 20\r\n"+
			"\r\n"+
			content,
		response,
	)
}

func TestHandleDirectoryServesIndexPage(t *testing.T) {
	content := uniuri.NewLen(64)
	root := newRoot(t, map[string]string{"index.html": content})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "GET / HTTP/1.0\r\n")

	require.Contains(t, response, "HTTP/1.1 200 OK\r\n")
	require.True(t, strings.HasSuffix(response, content))
}

func TestHandleSkipsBlankLeadingLines(t *testing.T) {
	content := uniuri.NewLen(16)
	root := newRoot(t, map[string]string{"index.html": content})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "\r\n\r\nGET /index.html HTTP/1.1\r\n")

	require.Contains(t, response, "HTTP/1.1 200 OK\r\n")
}

func TestHandleIgnoresHeadersAndBody(t *testing.T) {
	content := uniuri.NewLen(16)
	root := newRoot(t, map[string]string{"index.html": content})

	raw := "GET /index.html HTTP/1.1\r\nHost: localhost\r\nUser-Agent: test\r\n\r\n"
	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, raw)

	require.Contains(t, response, "HTTP/1.1 200 OK\r\n")
	require.True(t, strings.HasSuffix(response, content))
}

func TestHandleNotFound(t *testing.T) {
	root := newRoot(t, map[string]string{"index.html": "irrelevant", "404.html": "from file"})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "GET /missing.html HTTP/1.1\r\n")

	// the 404 body is always the inline page, never a file from the root
	require.Contains(t, response, "HTTP/1.1 404 Not Found\r\n")
	require.Contains(t, response, "Connection: close\r\n")
	require.True(t, strings.HasSuffix(response, notFoundFallback))
}

func TestHandleNotFoundWithMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "GET /index.html HTTP/1.1\r\n")

	require.Contains(t, response, "HTTP/1.1 404 Not Found\r\n")
	require.True(t, strings.HasSuffix(response, notFoundFallback))
}

func TestHandleNotImplemented(t *testing.T) {
	page := "<h1>501</h1>"
	root := newRoot(t, map[string]string{"index.html": "irrelevant", "501.html": page})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "POST /index.html HTTP/1.1\r\n")

	require.Contains(t, response, "HTTP/1.1 501 Not Implemented\r\n")
	require.Contains(t, response, "Connection: close\r\n")
	require.True(t, strings.HasSuffix(response, page))
}

func TestHandleBadRequest(t *testing.T) {
	page := "<h1>400</h1>"
	root := newRoot(t, map[string]string{"index.html": "irrelevant", "400.html": page})

	for _, raw := range []string{"GET HTTP/1.1\r\n", "GET /index.html HTTP/2\r\n"} {
		response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, raw)

		require.Contains(t, response, "HTTP/1.1 400 Bad Request\r\n", raw)
		require.True(t, strings.HasSuffix(response, page), raw)
	}
}

func TestHandleMissingErrorPageClosesSilently(t *testing.T) {
	// no 400.html here, so the error response itself cannot be built: the
	// connection is closed with nothing written
	root := newRoot(t, map[string]string{"index.html": "irrelevant"})

	response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, "GET HTTP/1.1\r\n")

	require.Empty(t, response)
}

func TestHandleEveryResponseDeclaresClosure(t *testing.T) {
	root := newRoot(t, map[string]string{
		"index.html": "hello",
		"400.html":   "bad request",
		"501.html":   "not implemented",
	})

	for _, raw := range []string{
		"GET /index.html HTTP/1.1\r\n",
		"GET /missing HTTP/1.1\r\n",
		"PUT / HTTP/1.1\r\n",
		"GET nonsense\r\n",
	} {
		response := exchange(t, settings.Settings{FS: settings.FS{Root: root}}, raw)
		require.Contains(t, response, "Connection: close\r\n", raw)
	}
}
