//go:build !android

package platform

import (
	"os"
	"path/filepath"
)

// Host reports no candidate directories; the fallback is
// <user config dir>/extfiles.
type Host struct {
	configDir string
}

// Detect returns the provider for the running host
func Detect() (*Host, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fall back to the working directory when no config dir is known
		dir = "."
	}
	return &Host{configDir: dir}, nil
}

// ListCandidateDirectories returns nil on desktop hosts
func (h *Host) ListCandidateDirectories() []string {
	return nil
}

// FallbackDirectory returns the per-user extfiles directory, creating it
// if needed so it can receive migrated files.
func (h *Host) FallbackDirectory() string {
	dir := filepath.Join(h.configDir, AppDirName)
	_ = os.MkdirAll(dir, 0755)
	return dir
}
