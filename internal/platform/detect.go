package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using the running host.
type RealDetector struct {
	goos    string
	goarch  string
	version string
}

// NewDetector creates a new host descriptor detector.
func NewDetector() Detector {
	return &RealDetector{
		goos:    runtime.GOOS,
		goarch:  runtime.GOARCH,
		version: runtime.Version(),
	}
}

// Detect builds a Descriptor for the running host.
//
// The OS name comes from GOOS. The architecture is the kernel's own name as
// reported by gopsutil, so a 32-bit build on a 64-bit kernel still detects
// as 64-bit. If the kernel architecture cannot be read, the GOARCH of this
// binary is used instead (graceful fallback).
func (d *RealDetector) Detect(ctx context.Context) (Descriptor, error) {
	desc := Descriptor{
		VMName: "Go " + d.version,
		OSName: osName(d.goos),
		OSArch: archName(d.goarch),
	}

	if d.goos == "android" {
		desc.VMName = dalvikMarker
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		// Check if context was cancelled - this is a hard failure
		if ctx.Err() != nil {
			return Descriptor{}, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return desc, nil
	}

	if arch := strings.TrimSpace(info.KernelArch); arch != "" {
		desc.OSArch = arch
	}

	return desc, nil
}

// StaticDetector returns a fixed descriptor. It backs explicit overrides
// and tests.
type StaticDetector struct {
	Descriptor Descriptor
}

// Detect returns the configured descriptor.
func (s StaticDetector) Detect(ctx context.Context) (Descriptor, error) {
	return s.Descriptor, nil
}
