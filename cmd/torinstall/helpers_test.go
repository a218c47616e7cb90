package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeZip writes a zip archive holding files (name -> content) to path.
func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// linuxResources creates a resources directory for a 64-bit Linux install.
func linuxResources(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeZip(t, filepath.Join(dir, "tor-linux-x86_64.zip"), map[string]string{
		"tor":             "#!/bin/sh\necho tor\n",
		"lib/libevent.so": "elf",
	})
	writeZip(t, filepath.Join(dir, "data.zip"), map[string]string{
		"data/":      "",
		"data/geoip": "geoip",
	})
	return dir
}

// linuxHostFlags pins the host to 64-bit Linux.
var linuxHostFlags = []string{"--vm-name", "Go", "--os-name", "Linux", "--os-arch", "x86_64"}
