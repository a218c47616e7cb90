package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for torinstall.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "torinstall",
		Short: "Install the bundled Tor distribution",
		Long: `torinstall unpacks the Tor archive for this host, together with the shared
Tor data archive, into a target directory and marks the Tor executable
as runnable.

Settings are read from torinstall.lua in the XDG config directory.
Command-line flags take precedence over the config file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().StringP("config", "c", "", "Path to torinstall.lua (default: XDG config search)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Show raw details for config errors")

	cmd.AddCommand(NewInstallCmd())
	cmd.AddCommand(NewPlatformCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
