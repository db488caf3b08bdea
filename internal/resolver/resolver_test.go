package resolver

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/ser1103/plainserv/http/status"
	"github.com/stretchr/testify/require"
)

const indexPage = "/index.html"

func newRoot(t *testing.T) (root, indexContent string) {
	t.Helper()

	root = t.TempDir()
	indexContent = uniuri.NewLen(64)
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(indexContent), 0o644))

	return root, indexContent
}

func TestResolveFile(t *testing.T) {
	root, indexContent := newRoot(t)

	resolved, err := Resolve("/index.html", root, indexPage)
	require.NoError(t, err)
	defer resolved.Close()

	require.Equal(t, "index.html", resolved.Name)
	require.Equal(t, int64(len(indexContent)), resolved.Size)

	content, err := io.ReadAll(resolved.File)
	require.NoError(t, err)
	require.Equal(t, indexContent, string(content))
}

func TestResolveDirectorySubstitutesIndexPage(t *testing.T) {
	root, indexContent := newRoot(t)

	resolved, err := Resolve("/", root, indexPage)
	require.NoError(t, err)
	defer resolved.Close()

	require.Equal(t, "index.html", resolved.Name)
	require.Equal(t, int64(len(indexContent)), resolved.Size)
}

func TestResolveNestedDirectory(t *testing.T) {
	root, _ := newRoot(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))
	page := uniuri.NewLen(32)
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "index.html"), []byte(page), 0o644))

	resolved, err := Resolve("/docs", root, indexPage)
	require.NoError(t, err)
	defer resolved.Close()

	require.Equal(t, int64(len(page)), resolved.Size)
}

func TestResolveMissing(t *testing.T) {
	root, _ := newRoot(t)

	_, err := Resolve("/no-such-file.html", root, indexPage)
	require.ErrorIs(t, err, status.ErrNotFound)

	// a directory without an index page is missing as well
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	_, err = Resolve("/empty", root, indexPage)
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestResolveFileUsedAsDirectory(t *testing.T) {
	root, _ := newRoot(t)

	// index.html is a regular file, so anything nested under it is missing,
	// not broken
	_, err := Resolve("/index.html/extra", root, indexPage)
	require.ErrorIs(t, err, status.ErrNotFound)

	_, err = Resolve("/index.html/deeper/still", root, indexPage)
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestResolveMissingRoot(t *testing.T) {
	_, err := Resolve("/index.html", filepath.Join(t.TempDir(), "gone"), indexPage)
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestResolveForbidden(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	root, _ := newRoot(t)
	locked := filepath.Join(root, "locked.html")
	require.NoError(t, os.WriteFile(locked, []byte("secret"), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))

	_, err := Resolve("/locked.html", root, indexPage)
	require.ErrorIs(t, err, status.ErrForbidden)
}
