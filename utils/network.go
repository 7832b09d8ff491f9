package utils

import (
	"path/filepath"
	"strings"
)

// Common network mount prefixes on different platforms
var networkPrefixes = []string{
	"/mnt/",     // Linux NFS/SMB mounts
	"/media/",   // Linux removable/network media
	"/Volumes/", // macOS network volumes
}

// Network filesystem indicators that may appear in mount paths
var networkIndicators = []string{
	"nfs", "cifs", "smb", "webdav", "ftp", "sftp",
}

// IsNetworkDrive detects whether a path is on a network-mounted drive.
// Conversion is I/O bound on network shares, so the worker-count default
// drops to a single worker when the input lives on one.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, before any absolute-path conversion
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	for _, indicator := range networkIndicators {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}

	return false
}
