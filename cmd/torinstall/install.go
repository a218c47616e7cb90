package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/installer"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/logging"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Unpack Tor into the target directory",
		Long: `Install unpacks the Tor archive for this host and the shared data archive
into the target directory, then marks the Tor executable as runnable.

Archives are read from the bundle embedded in torinstall unless a
resources directory is given.

Examples:
  # Install into the default XDG data directory
  torinstall install

  # Install into /opt/tor using archives from ./dist
  torinstall install --target /opt/tor --resources ./dist

  # Install the 32-bit Linux build regardless of the host
  torinstall install --os-name Linux --os-arch i686`,
		Args: cobra.NoArgs,
		RunE: runInstallCmd,
	}

	cmd.Flags().StringP("target", "t", "", "Directory to install Tor into (default: XDG data dir)")
	cmd.Flags().StringP("resources", "r", "", "Directory holding the Tor archives (default: embedded bundle)")
	addHostFlags(cmd)

	return cmd
}

// runInstallCmd executes the install command.
func runInstallCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(s.config.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.With("command", "install")

	if s.source != "" {
		log.Debug("Loaded config", "path", s.source)
	}

	p := platform.Resolve(s.host)
	inst, err := installer.New(installer.Config{
		Platform: p,
		Locator:  s.locator(),
		Logger:   log,
	})
	if err != nil {
		log.Error("Cannot install on this host",
			"vm_name", s.host.VMName,
			"os_name", s.host.OSName,
			"os_arch", s.host.OSArch,
			"platform", p.String())
		if errors.Is(err, installer.ErrUnsupportedPlatform) {
			return installer.ErrUnsupportedPlatform
		}
		return err
	}

	lock, err := installer.AcquireLock(ctx, s.config.TargetDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			log.Warn("Failed to release install lock", "path", lock.Path(), "error", err)
		}
	}()

	events, err := inst.Start(ctx, installer.Request{TargetDir: s.config.TargetDir})
	if err != nil {
		return err
	}

	if err := watchInstall(ctx, cmd.OutOrStdout(), events, log); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tor executable: %s\n", inst.ExecutablePath(s.config.TargetDir))
	return nil
}

// watchInstall reports events until the install ends. An interrupt is
// logged but the current step is allowed to finish.
func watchInstall(ctx context.Context, w io.Writer, events <-chan installer.Notification, log *logging.Logger) error {
	done := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		return reportProgress(w, events)
	})
	g.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
			log.Warn("Interrupted, waiting for the current step to finish")
		}
		return nil
	})

	return g.Wait()
}

// reportProgress prints each notification and returns the failure, if any.
func reportProgress(w io.Writer, events <-chan installer.Notification) error {
	var failure error
	for n := range events {
		switch n.Kind {
		case installer.KindProgress:
			fmt.Fprintf(w, "%s...\n", n.Text)
		case installer.KindComplete:
			fmt.Fprintln(w, n)
		case installer.KindFailure:
			if n.Err != nil {
				failure = fmt.Errorf("%s: %w", n.Text, n.Err)
			} else {
				failure = errors.New(n.Text)
			}
		}
	}
	return failure
}
