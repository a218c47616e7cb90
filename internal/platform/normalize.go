package platform

import "strings"

// dalvikMarker in the VM name identifies an Android runtime.
const dalvikMarker = "Dalvik"

// Resolve classifies a host descriptor. It is total and deterministic:
// every descriptor maps to exactly one Platform.
//
// An Android VM wins over everything else. Otherwise the OS name is matched
// by substring ("Windows", "Mac", "Linux") and, for Windows and Linux, the
// width is 64-bit when the architecture contains "64".
func Resolve(d Descriptor) Platform {
	if strings.Contains(d.VMName, dalvikMarker) {
		return Android
	}

	is64 := strings.Contains(d.OSArch, "64")

	switch {
	case strings.Contains(d.OSName, "Windows"):
		if is64 {
			return Windows64
		}
		return Windows32
	case strings.Contains(d.OSName, "Mac"):
		return Mac
	case strings.Contains(d.OSName, "Linux"):
		if is64 {
			return Linux64
		}
		return Linux32
	default:
		return Unsupported
	}
}

// osNames maps GOOS values to the conventional OS names Resolve expects.
var osNames = map[string]string{
	"linux":   "Linux",
	"android": "Linux",
	"windows": "Windows NT",
	"darwin":  "Mac OS X",
	"ios":     "Mac OS X",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
	"solaris": "SunOS",
	"illumos": "SunOS",
	"aix":     "AIX",
	"plan9":   "Plan 9",
}

// osName converts a GOOS value to a conventional OS name.
// Unknown values pass through unchanged and resolve to Unsupported.
func osName(goos string) string {
	if name, ok := osNames[strings.ToLower(strings.TrimSpace(goos))]; ok {
		return name
	}
	return goos
}

// archName converts GOARCH values to kernel-style architecture names.
// It is the fallback when the kernel architecture cannot be read.
func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7l"
	default:
		return goarch
	}
}
