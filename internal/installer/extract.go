package installer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/klauspost/compress/zip"
)

var (
	// ErrNoArchive is returned when there is no archive stream to extract.
	ErrNoArchive = errors.New("no archive to extract")
	// ErrIllegalPath is returned for entries that would land outside the destination.
	ErrIllegalPath = errors.New("illegal file path")
)

// Extractor handles archive extraction
type Extractor struct {
	dirMode  os.FileMode
	fileMode os.FileMode
}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{
		dirMode:  0755,
		fileMode: 0644,
	}
}

// statReaderAt is satisfied by *os.File and embedded files, which can be
// read in place instead of being buffered.
type statReaderAt interface {
	io.ReaderAt
	Stat() (fs.FileInfo, error)
}

// ExtractZip extracts a zip archive stream into destDir and returns the
// number of files written.
//
// destDir is created if it does not exist. Entries are processed in the
// order they are stored; directory entries are created with their parents
// and file entries are created or truncated and filled with their content.
// Extraction stops at the first error and leaves what was already written.
func (e *Extractor) ExtractZip(destDir string, archive io.Reader) (int, error) {
	if archive == nil {
		return 0, ErrNoArchive
	}

	// Create destination directory
	if err := os.MkdirAll(destDir, e.dirMode); err != nil {
		return 0, fmt.Errorf("create dest dir: %w", err)
	}

	zipReader, err := openZip(archive)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, entry := range zipReader.File {
		target, err := resolveEntryPath(destDir, entry.Name)
		if err != nil {
			return written, err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, e.dirMode); err != nil {
				return written, fmt.Errorf("create directory %s: %w", target, err)
			}
			continue
		}

		if err := e.writeEntry(target, entry); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// openZip opens a zip archive from a stream, reading it in place when the
// stream supports random access.
func openZip(archive io.Reader) (*zip.Reader, error) {
	if ra, ok := archive.(statReaderAt); ok {
		if info, err := ra.Stat(); err == nil && info.Mode().IsRegular() {
			return newZipReader(ra, info.Size())
		}
	}

	data, err := io.ReadAll(archive)
	if err != nil {
		return nil, fmt.Errorf("read archive stream: %w", err)
	}

	return newZipReader(bytes.NewReader(data), int64(len(data)))
}

// newZipReader opens a zip archive. Insecure entry names are reported by
// the reader alongside a usable archive; those entries are rejected one by
// one during extraction instead.
func newZipReader(r io.ReaderAt, size int64) (*zip.Reader, error) {
	zipReader, err := zip.NewReader(r, size)
	if zipReader == nil {
		return nil, fmt.Errorf("read zip archive: %w", err)
	}
	return zipReader, nil
}

// resolveEntryPath maps an entry name to a path inside destDir.
func resolveEntryPath(destDir, name string) (string, error) {
	local := filepath.FromSlash(name)

	// Security check: prevent path traversal
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %s", ErrIllegalPath, name)
	}

	// Symlinks already on disk are resolved inside destDir as well
	target, err := securejoin.SecureJoin(destDir, local)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}

	return target, nil
}

// writeEntry copies one file entry to target.
func (e *Extractor) writeEntry(target string, entry *zip.File) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(target), e.dirMode); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", target, err)
	}

	contents, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entry.Name, err)
	}
	defer contents.Close()

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, e.fileMode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}

	if _, err := io.Copy(outFile, contents); err != nil {
		outFile.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", target, err)
	}

	return nil
}
