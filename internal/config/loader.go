package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// relativeConfigPath is the config file location under an XDG config dir.
var relativeConfigPath = filepath.Join(AppName, FileName)

// Find searches the XDG config directories for the config file.
// It returns false when no file exists.
func Find() (string, bool) {
	path, err := xdg.SearchConfigFile(relativeConfigPath)
	if err != nil {
		return "", false
	}
	return path, true
}

// DefaultPath returns where a new config file is written, creating the
// parent directory. On Linux: ~/.config/torinstall/torinstall.lua
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(relativeConfigPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// Load returns the effective configuration: the defaults overlaid with the
// config file at path or, when path is empty, the first file found by Find.
// It also returns the file that was used ("" when none was).
func Load(ctx context.Context, parser *Parser, path string) (*Config, string, error) {
	if path == "" {
		found, ok := Find()
		if !ok {
			return Default(), "", nil
		}
		path = found
	}

	fileConfig, err := parser.ParseFile(ctx, path)
	if err != nil {
		return nil, path, fmt.Errorf("load %s: %w", path, err)
	}

	return Default().Merge(fileConfig), path, nil
}
