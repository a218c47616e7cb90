package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// Config represents the torinstall configuration.
// Empty fields mean "use the default".
type Config struct {
	// TargetDir is where Tor is installed
	TargetDir string `yaml:"target_dir,omitempty"`

	// ResourcesDir holds the archives; empty means the embedded bundle
	ResourcesDir string `yaml:"resources_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`

	// Host overrides fields of the detected host descriptor
	Host platform.Descriptor `yaml:"host,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TargetDir: DefaultTargetDir(),
		LogLevel:  "info",
	}
}

// DefaultTargetDir returns the XDG data directory Tor is installed into.
// On Linux: ~/.local/share/torinstall/tor
func DefaultTargetDir() string {
	return filepath.Join(xdg.DataHome, AppName, "tor")
}

// Merge returns a copy of c with every non-empty field of o applied.
func (c *Config) Merge(o *Config) *Config {
	merged := *c
	if o == nil {
		return &merged
	}
	if o.TargetDir != "" {
		merged.TargetDir = o.TargetDir
	}
	if o.ResourcesDir != "" {
		merged.ResourcesDir = o.ResourcesDir
	}
	if o.LogLevel != "" {
		merged.LogLevel = o.LogLevel
	}
	merged.Host = merged.Host.Override(o.Host)
	return &merged
}

// Validate performs basic validation on a Config.
func (c *Config) Validate() error {
	if c.TargetDir != "" && strings.TrimSpace(c.TargetDir) == "" {
		return &ValidationError{Field: luaFieldTargetDir, Message: "cannot be blank"}
	}

	if c.ResourcesDir != "" && strings.TrimSpace(c.ResourcesDir) == "" {
		return &ValidationError{Field: luaFieldResources, Message: "cannot be blank"}
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return &ValidationError{
			Field:   luaFieldLogLevel,
			Message: fmt.Sprintf("unknown level %q (want debug, info, warn or error)", c.LogLevel),
		}
	}

	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}
