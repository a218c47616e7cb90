// Package platform classifies the host into one of the platforms torinstall
// ships pre-built Tor archives for.
//
// Classification is a pure function of a Descriptor (VM name, OS name and
// OS architecture). Reading those values from the live system is the job of
// a Detector and happens only at the program's entry point, so tests and
// configs can pin the descriptor explicitly.
package platform

import "context"

// Platform is the closed set of host platforms the installer distinguishes.
type Platform int

const (
	// Unsupported is any host torinstall has no archive for.
	Unsupported Platform = iota
	Windows32
	Windows64
	Linux32
	Linux64
	Mac
	Android
)

// String returns the platform's canonical name (e.g. "linux-64").
func (p Platform) String() string {
	switch p {
	case Windows32:
		return "windows-32"
	case Windows64:
		return "windows-64"
	case Linux32:
		return "linux-32"
	case Linux64:
		return "linux-64"
	case Mac:
		return "mac"
	case Android:
		return "android"
	default:
		return "unsupported"
	}
}

// IsWindows returns true for both Windows widths.
func (p Platform) IsWindows() bool {
	return p == Windows32 || p == Windows64
}

// IsLinux returns true for both Linux widths.
func (p Platform) IsLinux() bool {
	return p == Linux32 || p == Linux64
}

// Is64Bit returns true for the 64-bit Windows and Linux variants.
// Mac and Android carry no width and report false.
func (p Platform) Is64Bit() bool {
	return p == Windows64 || p == Linux64
}

// Descriptor holds the three host strings a Platform is derived from.
type Descriptor struct {
	VMName string `yaml:"vm_name"` // runtime name; "Dalvik" marks Android
	OSName string `yaml:"os_name"` // e.g. "Linux", "Windows NT", "Mac OS X"
	OSArch string `yaml:"os_arch"` // e.g. "x86_64", "amd64", "i686"
}

// Override returns a copy of d with every non-empty field of o applied.
func (d Descriptor) Override(o Descriptor) Descriptor {
	if o.VMName != "" {
		d.VMName = o.VMName
	}
	if o.OSName != "" {
		d.OSName = o.OSName
	}
	if o.OSArch != "" {
		d.OSArch = o.OSArch
	}
	return d
}

// Detector is the interface for host descriptor detection.
type Detector interface {
	Detect(ctx context.Context) (Descriptor, error)
}
