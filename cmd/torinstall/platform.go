package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/installer"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// platformReport is what the platform command prints.
type platformReport struct {
	Host       platform.Descriptor `yaml:"host"`
	Platform   string              `yaml:"platform"`
	Archive    string              `yaml:"archive,omitempty"`
	Executable string              `yaml:"executable,omitempty"`
}

// NewPlatformCmd creates the platform command.
func NewPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show the detected host and the Tor build it selects",
		Long: `Platform prints the host descriptor (runtime, OS name, architecture), the
platform it resolves to, and the archive and executable an install would use.

Examples:
  torinstall platform
  torinstall platform --format yaml
  torinstall platform --vm-name Dalvik`,
		Args: cobra.NoArgs,
		RunE: runPlatformCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	addHostFlags(cmd)

	return cmd
}

// runPlatformCmd executes the platform command.
func runPlatformCmd(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	report := newPlatformReport(s.host)
	if format == "yaml" {
		return writeYAML(cmd.OutOrStdout(), report)
	}
	writePlatformText(cmd.OutOrStdout(), report)
	return nil
}

// newPlatformReport resolves desc. Unsupported parts are left empty.
func newPlatformReport(desc platform.Descriptor) platformReport {
	p := platform.Resolve(desc)
	report := platformReport{Host: desc, Platform: p.String()}

	if name, err := installer.ArchiveName(p); err == nil {
		report.Archive = name
	}
	if name, err := installer.ExecutableName(p); err == nil {
		report.Executable = name
	}
	return report
}

func writePlatformText(w io.Writer, r platformReport) {
	fmt.Fprintf(w, "VM name:    %s\n", r.Host.VMName)
	fmt.Fprintf(w, "OS name:    %s\n", r.Host.OSName)
	fmt.Fprintf(w, "OS arch:    %s\n", r.Host.OSArch)
	fmt.Fprintf(w, "Platform:   %s\n", r.Platform)
	fmt.Fprintf(w, "Archive:    %s\n", orNone(r.Archive))
	fmt.Fprintf(w, "Executable: %s\n", orNone(r.Executable))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
