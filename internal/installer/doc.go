// Package installer unpacks the bundled Tor distribution into a target
// directory and makes the Tor executable runnable.
//
// # Workflow
//
// An install runs a fixed sequence of steps, each exactly once:
//
//  1. Emit Progress("Unarchiving tor") and open the platform's Tor archive
//  2. Extract the Tor archive into the target directory
//  3. Extract data.zip into the same directory
//  4. Mark <target>/tor (or tor.exe) readable and executable
//
// The first failing step ends the install with a single Failure
// notification naming the step; otherwise the install ends with Complete.
// Files already extracted by a failed install are left in place.
//
// # Errors
//
// Errors come in two tiers. An unsupported platform is a precondition
// failure returned by New before any I/O happens. Everything that can go
// wrong while installing (missing archives, corrupt zips, filesystem
// errors) is reported as a Failure notification instead of an error.
//
// # Usage
//
//	inst, err := installer.New(installer.Config{
//	    Platform: platform.Resolve(desc),
//	    Locator:  resource.Bundled(),
//	})
//	if err != nil {
//	    return err // unsupported platform
//	}
//
//	events, err := inst.Start(ctx, installer.Request{TargetDir: dir})
//	if err != nil {
//	    return err
//	}
//	for n := range events {
//	    fmt.Println(n)
//	}
//
// # Architecture
//
// The package is organized into several components:
//   - Installer: the install state machine and its notifications
//   - Extractor: zip extraction confined to the target directory
//   - SetExecutable: permission bits for the Tor executable
//   - ArchiveName / ExecutableName: per-platform file names
//   - Lock: guards a target directory against concurrent installs
package installer
