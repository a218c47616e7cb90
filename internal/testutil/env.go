// Package testutil provides utilities for testing torinstall in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// Env holds the isolated XDG directories of a test.
type Env struct {
	Root       string
	ConfigHome string
	ConfigDirs string
	DataHome   string
	CacheHome  string
}

// SetupTestEnv points the XDG base directories at a fresh temp dir so tests
// never read or write the user's real torinstall config or install.
//
// It uses t.Setenv, so it cannot be combined with t.Parallel.
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	// Registered before t.Setenv so it runs after the variables are restored
	t.Cleanup(xdg.Reload)

	tmpDir := t.TempDir()
	env := Env{
		Root:       tmpDir,
		ConfigHome: filepath.Join(tmpDir, "config"),
		ConfigDirs: filepath.Join(tmpDir, "config-dirs"),
		DataHome:   filepath.Join(tmpDir, "data"),
		CacheHome:  filepath.Join(tmpDir, "cache"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDirs)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_CACHE_HOME", env.CacheHome)

	for _, dir := range []string{env.ConfigHome, env.ConfigDirs, env.DataHome, env.CacheHome} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	xdg.Reload()
	return env
}
