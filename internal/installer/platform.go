package installer

import (
	"errors"
	"fmt"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// ErrUnsupportedPlatform is returned when no archive or executable exists
// for the host platform. Nothing can be installed in that case.
var ErrUnsupportedPlatform = errors.New("OS unsupported")

// DataArchiveName is the platform-independent Tor data archive.
const DataArchiveName = "data.zip"

// ArchiveName returns the Tor binary archive for a platform.
//
// Android has an executable name but no archive of its own, so it is
// rejected here just like Unsupported.
func ArchiveName(p platform.Platform) (string, error) {
	switch p {
	case platform.Linux32:
		return "tor-linux-i686.zip", nil
	case platform.Linux64:
		return "tor-linux-x86_64.zip", nil
	case platform.Mac:
		return "tor-osx-x86_x64.zip", nil
	case platform.Windows32:
		return "tor-win32.zip", nil
	case platform.Windows64:
		return "tor-win64.zip", nil
	default:
		return "", fmt.Errorf("no tor archive for %s: %w", p, ErrUnsupportedPlatform)
	}
}

// ExecutableName returns the file name of the Tor executable on a platform.
func ExecutableName(p platform.Platform) (string, error) {
	switch p {
	case platform.Android, platform.Linux32, platform.Linux64, platform.Mac:
		return "tor", nil
	case platform.Windows32, platform.Windows64:
		return "tor.exe", nil
	default:
		return "", fmt.Errorf("no tor executable for %s: %w", p, ErrUnsupportedPlatform)
	}
}
