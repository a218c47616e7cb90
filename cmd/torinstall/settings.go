package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/config"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/resource"
)

// settings is the effective configuration of one command run.
type settings struct {
	config *config.Config
	host   platform.Descriptor
	source string // config file that was loaded, "" for none
}

// addHostFlags registers the flags that override the detected host.
func addHostFlags(cmd *cobra.Command) {
	cmd.Flags().String("vm-name", "", "Override the detected runtime name (\"Dalvik\" selects Android)")
	cmd.Flags().String("os-name", "", "Override the detected OS name (e.g. \"Linux\", \"Windows 10\", \"Mac OS X\")")
	cmd.Flags().String("os-arch", "", "Override the detected architecture (e.g. \"x86_64\", \"i686\")")
}

// loadSettings detects the host and layers the config file and the command
// flags over it. Precedence: flags > config file > detected/defaults.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	ctx := cmd.Context()

	detected, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect host: %w", err)
	}

	// The config sees the detected host, not the overridden one
	parser := config.NewParser(platform.StaticDetector{Descriptor: detected})
	cfg, source, err := config.Load(ctx, parser, flagString(cmd, "config"))
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return nil, fmt.Errorf("load %s: %s", source, config.FormatError(parseErr, verbose))
		}
		return nil, err
	}

	cfg = cfg.Merge(&config.Config{
		TargetDir:    flagString(cmd, "target"),
		ResourcesDir: flagString(cmd, "resources"),
		LogLevel:     flagString(cmd, "log-level"),
		Host: platform.Descriptor{
			VMName: flagString(cmd, "vm-name"),
			OSName: flagString(cmd, "os-name"),
			OSArch: flagString(cmd, "os-arch"),
		},
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &settings{
		config: cfg,
		host:   detected.Override(cfg.Host),
		source: source,
	}, nil
}

// locator returns where the archives are read from.
func (s *settings) locator() resource.Locator {
	if s.config.ResourcesDir != "" {
		return resource.Dir(s.config.ResourcesDir)
	}
	return resource.Bundled()
}

// flagString returns a flag's value, or "" when the command has no such flag.
func flagString(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
