package installer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
	"github.com/ZebulonRouseFrantzich/torinstall/internal/resource"
)

// maxNotifications bounds the notifications of one install: a progress
// message and a terminal one. Start buffers this many so the worker never
// blocks on a slow reader.
const maxNotifications = 2

// Installer runs installs of the bundled Tor distribution.
type Installer struct {
	platform       platform.Platform
	archiveName    string
	executableName string
	locator        resource.Locator
	extractor      *Extractor
	logger         Logger
}

// Config holds configuration for the installer
type Config struct {
	// Platform selects the Tor archive and executable name
	Platform platform.Platform
	// Locator opens the archive resources
	Locator resource.Locator
	// Logger receives structured log output (default: no-op)
	Logger Logger
	// Extractor unpacks archives (default: NewExtractor())
	Extractor *Extractor
}

// New creates an installer for the configured platform.
// It fails with ErrUnsupportedPlatform when the platform has no Tor archive
// or executable, before any I/O is attempted.
func New(config Config) (*Installer, error) {
	archiveName, err := ArchiveName(config.Platform)
	if err != nil {
		return nil, err
	}

	executableName, err := ExecutableName(config.Platform)
	if err != nil {
		return nil, err
	}

	if config.Locator == nil {
		return nil, fmt.Errorf("Locator is required")
	}

	inst := &Installer{
		platform:       config.Platform,
		archiveName:    archiveName,
		executableName: executableName,
		locator:        config.Locator,
		extractor:      config.Extractor,
		logger:         config.Logger,
	}

	if inst.extractor == nil {
		inst.extractor = NewExtractor()
	}
	if inst.logger == nil {
		inst.logger = defaultLogger()
	}

	return inst, nil
}

// Platform returns the platform the installer was created for.
func (i *Installer) Platform() platform.Platform {
	return i.platform
}

// ArchiveName returns the Tor archive resource the installer extracts.
func (i *Installer) ArchiveName() string {
	return i.archiveName
}

// ExecutablePath returns where the Tor executable lands inside dir.
func (i *Installer) ExecutablePath(dir string) string {
	return filepath.Join(dir, i.executableName)
}

// step is one stage of an install and the failure message reported when it fails.
type step struct {
	failure string
	run     func() error
}

// Run installs into req.TargetDir, passing every notification to sink in
// order. Exactly one Complete or Failure notification is delivered.
//
// Run only returns an error for an invalid request; install failures are
// delivered to sink.
func (i *Installer) Run(ctx context.Context, req Request, sink Sink) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	if sink == nil {
		return errors.New("notification sink is required")
	}

	installID := uuid.NewString()
	startTime := time.Now()

	emit := func(n Notification) {
		switch n.Kind {
		case KindFailure:
			i.logger.Error(n.Text, "install_id", installID, "error", n.Err, "elapsed", time.Since(startTime))
		case KindComplete:
			i.logger.Info("Install complete", "install_id", installID, "elapsed", time.Since(startTime))
		default:
			i.logger.Info(n.Text, "install_id", installID)
		}
		sink(n)
	}

	i.logger.Debug("Starting install",
		"install_id", installID,
		"platform", i.platform.String(),
		"archive", i.archiveName,
		"target_dir", req.TargetDir)

	if err := ctx.Err(); err != nil {
		emit(Failure(MsgCancelled, err))
		return nil
	}

	emit(Progress(MsgUnarchivingTor))

	steps := []step{
		{
			failure: MsgTorArchiveFailed,
			run:     func() error { return i.unarchive(installID, req.TargetDir, i.archiveName) },
		},
		{
			failure: MsgDataFailed,
			run:     func() error { return i.unarchive(installID, req.TargetDir, DataArchiveName) },
		},
		{
			failure: MsgPermsFailed,
			run:     func() error { return i.setPermissions(installID, req.TargetDir) },
		},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			emit(Failure(MsgCancelled, err))
			return nil
		}
		if err := s.run(); err != nil {
			emit(Failure(s.failure, err))
			return nil
		}
	}

	emit(Complete())
	return nil
}

// Start validates req and runs the install on a single worker goroutine.
// The returned channel yields the notifications in order and is closed
// after the terminal one.
func (i *Installer) Start(ctx context.Context, req Request) (<-chan Notification, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	events := make(chan Notification, maxNotifications)
	go func() {
		defer close(events)
		// The request was validated above, so Run cannot fail here
		_ = i.Run(ctx, req, func(n Notification) {
			events <- n
		})
	}()

	return events, nil
}

// Collect drains events until it is closed.
func Collect(events <-chan Notification) []Notification {
	var out []Notification
	for n := range events {
		out = append(out, n)
	}
	return out
}

// unarchive extracts the named archive resource into dir.
func (i *Installer) unarchive(installID, dir, name string) error {
	archive, err := i.locator.Open(name)
	if err != nil {
		return err
	}
	defer archive.Close()

	files, err := i.extractor.ExtractZip(dir, archive)
	if err != nil {
		return fmt.Errorf("extract %s: %w", name, err)
	}

	i.logger.Debug("Extracted archive", "install_id", installID, "archive", name, "files", files)
	return nil
}

// setPermissions makes the extracted Tor executable runnable.
func (i *Installer) setPermissions(installID, dir string) error {
	path := i.ExecutablePath(dir)

	mode, err := SetExecutable(path)
	if err != nil {
		return err
	}

	i.logger.Debug("Set executable permissions", "install_id", installID, "path", path, "mode", mode.String())
	return nil
}

func validateRequest(req Request) error {
	if req.TargetDir == "" {
		return fmt.Errorf("TargetDir is required")
	}
	return nil
}
