package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// zipEntry is one entry of a test archive. Names ending in "/" are directories.
type zipEntry struct {
	name    string
	content string
}

// Helper function to create a test zip archive in memory
func createTestZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, entry := range entries {
		w, err := zipWriter.Create(entry.name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", entry.name, err)
		}
		if strings.HasSuffix(entry.name, "/") {
			continue
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			t.Fatalf("failed to write content for %s: %v", entry.name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		t.Fatalf("failed to close zip writer: %v", err)
	}

	return buf.Bytes()
}

func TestExtractZip(t *testing.T) {
	tests := []struct {
		name      string
		entries   []zipEntry
		wantFiles map[string]string
		wantDirs  []string
	}{
		{
			name: "directory_and_file",
			entries: []zipEntry{
				{name: "dir/"},
				{name: "dir/file.txt", content: "hello"},
			},
			wantFiles: map[string]string{"dir/file.txt": "hello"},
			wantDirs:  []string{"dir"},
		},
		{
			name: "file_without_directory_entry",
			entries: []zipEntry{
				{name: "a/b/c.txt", content: "nested"},
			},
			wantFiles: map[string]string{"a/b/c.txt": "nested"},
			wantDirs:  []string{"a", "a/b"},
		},
		{
			name: "tor_layout",
			entries: []zipEntry{
				{name: "tor", content: "#!/bin/sh\necho tor\n"},
				{name: "geoip", content: "geoip data"},
				{name: "lib/"},
				{name: "lib/libevent.so", content: "\x7fELF"},
			},
			wantFiles: map[string]string{
				"tor":             "#!/bin/sh\necho tor\n",
				"geoip":           "geoip data",
				"lib/libevent.so": "\x7fELF",
			},
			wantDirs: []string{"lib"},
		},
		{
			name: "empty_file",
			entries: []zipEntry{
				{name: "empty", content: ""},
			},
			wantFiles: map[string]string{"empty": ""},
		},
		{
			name:    "empty_archive",
			entries: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			destDir := filepath.Join(t.TempDir(), "install")
			archive := createTestZip(t, tt.entries...)

			files, err := NewExtractor().ExtractZip(destDir, bytes.NewReader(archive))
			if err != nil {
				t.Fatalf("ExtractZip() error = %v", err)
			}

			if files != len(tt.wantFiles) {
				t.Errorf("files written = %d, want %d", files, len(tt.wantFiles))
			}

			if info, err := os.Stat(destDir); err != nil || !info.IsDir() {
				t.Fatalf("destination directory not created: %v", err)
			}

			for name, want := range tt.wantFiles {
				got, err := os.ReadFile(filepath.Join(destDir, filepath.FromSlash(name)))
				if err != nil {
					t.Errorf("read %s: %v", name, err)
					continue
				}
				if string(got) != want {
					t.Errorf("%s content = %q, want %q", name, got, want)
				}
			}

			for _, dir := range tt.wantDirs {
				info, err := os.Stat(filepath.Join(destDir, filepath.FromSlash(dir)))
				if err != nil {
					t.Errorf("stat %s: %v", dir, err)
					continue
				}
				if !info.IsDir() {
					t.Errorf("%s is not a directory", dir)
				}
			}
		})
	}
}

func TestExtractZip_Twice(t *testing.T) {
	destDir := t.TempDir()
	archive := createTestZip(t,
		zipEntry{name: "dir/"},
		zipEntry{name: "dir/file.txt", content: "hello"},
	)

	extractor := NewExtractor()
	for run := 1; run <= 2; run++ {
		if _, err := extractor.ExtractZip(destDir, bytes.NewReader(archive)); err != nil {
			t.Fatalf("run %d: ExtractZip() error = %v", run, err)
		}
	}

	got, err := os.ReadFile(filepath.Join(destDir, "dir", "file.txt"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestExtractZip_Overwrites(t *testing.T) {
	destDir := t.TempDir()
	target := filepath.Join(destDir, "torrc")
	if err := os.WriteFile(target, []byte("a much longer stale configuration"), 0644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	archive := createTestZip(t, zipEntry{name: "torrc", content: "fresh"})
	if _, err := NewExtractor().ExtractZip(destDir, bytes.NewReader(archive)); err != nil {
		t.Fatalf("ExtractZip() error = %v", err)
	}

	got, _ := os.ReadFile(target)
	if string(got) != "fresh" {
		t.Errorf("content = %q, want %q", got, "fresh")
	}
}

func TestExtractZip_FromFile(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "data.zip")
	archive := createTestZip(t, zipEntry{name: "geoip6", content: "v6"})
	if err := os.WriteFile(archivePath, archive, 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer f.Close()

	destDir := t.TempDir()
	if _, err := NewExtractor().ExtractZip(destDir, f); err != nil {
		t.Fatalf("ExtractZip() error = %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(destDir, "geoip6"))
	if string(got) != "v6" {
		t.Errorf("content = %q, want %q", got, "v6")
	}
}

func TestExtractZip_Errors(t *testing.T) {
	t.Run("nil_archive", func(t *testing.T) {
		_, err := NewExtractor().ExtractZip(t.TempDir(), nil)
		if !errors.Is(err, ErrNoArchive) {
			t.Errorf("error = %v, want ErrNoArchive", err)
		}
	})

	t.Run("corrupt_archive", func(t *testing.T) {
		destDir := filepath.Join(t.TempDir(), "install")
		_, err := NewExtractor().ExtractZip(destDir, strings.NewReader("this is not a zip file"))
		if err == nil {
			t.Fatal("expected error for corrupt archive")
		}
		// The destination is created before the archive is read
		if _, statErr := os.Stat(destDir); statErr != nil {
			t.Errorf("destination not created: %v", statErr)
		}
	})

	t.Run("path_traversal", func(t *testing.T) {
		root := t.TempDir()
		destDir := filepath.Join(root, "install")
		archive := createTestZip(t,
			zipEntry{name: "ok.txt", content: "ok"},
			zipEntry{name: "../escape.txt", content: "evil"},
			zipEntry{name: "after.txt", content: "never written"},
		)

		files, err := NewExtractor().ExtractZip(destDir, bytes.NewReader(archive))
		if !errors.Is(err, ErrIllegalPath) {
			t.Fatalf("error = %v, want ErrIllegalPath", err)
		}
		if files != 1 {
			t.Errorf("files written = %d, want 1", files)
		}
		if _, err := os.Stat(filepath.Join(root, "escape.txt")); !os.IsNotExist(err) {
			t.Error("entry escaped the destination directory")
		}
		// No rollback: earlier entries stay, later ones are never written
		if _, err := os.Stat(filepath.Join(destDir, "ok.txt")); err != nil {
			t.Errorf("earlier entry removed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(destDir, "after.txt")); !os.IsNotExist(err) {
			t.Error("extraction continued past the failing entry")
		}
	})

	t.Run("absolute_path", func(t *testing.T) {
		archive := createTestZip(t, zipEntry{name: "/etc/tor.conf", content: "evil"})
		_, err := NewExtractor().ExtractZip(t.TempDir(), bytes.NewReader(archive))
		if !errors.Is(err, ErrIllegalPath) {
			t.Errorf("error = %v, want ErrIllegalPath", err)
		}
	})

	t.Run("destination_is_file", func(t *testing.T) {
		destDir := filepath.Join(t.TempDir(), "occupied")
		if err := os.WriteFile(destDir, []byte("x"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		archive := createTestZip(t, zipEntry{name: "tor", content: "bin"})
		if _, err := NewExtractor().ExtractZip(destDir, bytes.NewReader(archive)); err == nil {
			t.Error("expected error when destination is a file")
		}
	})
}
