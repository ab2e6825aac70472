package utils

import (
	"fmt"
	"os"
)

// SourceSize returns the length in bytes reported by the filesystem for path.
// Devices and other special files usually report 0.
func SourceSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get length of %s: %w", path, err)
	}
	if info.Size() < 0 {
		return 0, nil
	}
	return uint64(info.Size()), nil
}
