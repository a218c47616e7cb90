// Package resource resolves the archive resources the installer consumes.
//
// Archives are looked up by their conventional file name. Release builds
// embed them in the binary (see bundle/README.md); a directory on disk can
// stand in for the embedded bundle.
package resource

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// ErrNotFound is returned when a named resource is not available.
var ErrNotFound = errors.New("resource not found")

//go:embed bundle
var bundle embed.FS

// Locator opens named resources as byte streams.
type Locator interface {
	Open(name string) (io.ReadCloser, error)
}

// FSLocator serves resources from the root of an fs.FS.
type FSLocator struct {
	fsys fs.FS
}

// NewFSLocator creates a locator backed by fsys.
func NewFSLocator(fsys fs.FS) *FSLocator {
	return &FSLocator{fsys: fsys}
}

// Bundled returns a locator for the archives embedded in the binary.
func Bundled() *FSLocator {
	sub, err := fs.Sub(bundle, "bundle")
	if err != nil {
		// The embed directive guarantees the directory exists
		panic(fmt.Sprintf("resource bundle missing: %v", err))
	}
	return NewFSLocator(sub)
}

// Dir returns a locator for archives stored in dir.
func Dir(dir string) *FSLocator {
	return NewFSLocator(os.DirFS(dir))
}

// Open opens the resource called name.
// A missing resource yields an error wrapping ErrNotFound.
func (l *FSLocator) Open(name string) (io.ReadCloser, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("open %s: %w", name, ErrNotFound)
	}

	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("open %s: invalid resource name", name)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory: %w", name, ErrNotFound)
	}

	return f, nil
}
