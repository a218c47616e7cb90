package installer

import (
	"fmt"
	"os"
)

// SetExecutable makes path readable and executable by everyone and
// writable by its owner only. It returns the resulting permission bits.
//
// Existing bits outside those are kept, so an extracted 0644 file ends up
// 0755 and a 0666 file ends up 0755 as well.
func SetExecutable(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat executable: %w", err)
	}

	if info.IsDir() {
		return 0, fmt.Errorf("set executable: %s is a directory", path)
	}

	mode := info.Mode().Perm()
	mode |= 0555  // r-x for all
	mode &^= 0022 // no group/other write
	mode |= 0200  // owner write

	if err := os.Chmod(path, mode); err != nil {
		return 0, fmt.Errorf("set executable: %w", err)
	}

	return mode, nil
}
