package resolver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ser1103/plainserv/http/status"
)

// ResolvedFile is an opened file along with the metadata needed to build a
// response around it. It is owned by a single connection's handling flow;
// whoever received it must Close it on every exit path.
type ResolvedFile struct {
	File *os.File
	Name string
	Size int64
}

func (f ResolvedFile) Close() error {
	if f.File == nil {
		return nil
	}

	return f.File.Close()
}

// Resolve maps a requested path onto a file under root. The requested path
// is appended to the root verbatim; if the result is a directory, the index
// page name is appended to it in turn. A path that doesn't exist resolves to
// status.ErrNotFound, one that exists but can't be opened for reading to
// status.ErrForbidden.
//
// Note that verbatim concatenation means parent-directory segments in the
// requested path can escape the root. The server trusts its clients.
func Resolve(requestedPath, root, indexPage string) (ResolvedFile, error) {
	path := root + requestedPath

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path += indexPage
		info, err = os.Stat(path)
	}

	if err != nil {
		return ResolvedFile{}, classify(err)
	}

	file, err := os.Open(path)
	if err != nil {
		// the file was there a moment ago; a permission error is expected
		// here, anything else means it vanished under us
		return ResolvedFile{}, classify(err)
	}

	return ResolvedFile{
		File: file,
		Name: filepath.Base(path),
		Size: info.Size(),
	}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		// ENOTDIR comes up when a prefix of the requested path is a regular
		// file; such a path doesn't exist any more than a missing one does
		return status.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return status.ErrForbidden
	default:
		return err
	}
}
