//go:build android

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const storageMountRoot = "/storage"

// Host lists the app-specific external files directory on every mounted volume
type Host struct {
	pkg     string
	primary string
}

// Detect returns the provider for the running Android app
func Detect() (*Host, error) {
	pkg, err := detectAndroidApp()
	if err != nil {
		return nil, fmt.Errorf("failed to detect Android app: %w", err)
	}

	primary := os.Getenv("EXTERNAL_STORAGE")
	if primary == "" {
		primary = filepath.Join(storageMountRoot, "emulated", "0")
	}

	return &Host{pkg: pkg, primary: primary}, nil
}

// ListCandidateDirectories returns the primary volume's files directory
// followed by those of removable volumes, sorted by volume name.
func (h *Host) ListCandidateDirectories() []string {
	dirs := []string{h.filesDir(h.primary)}

	entries, err := os.ReadDir(storageMountRoot)
	if err != nil {
		return dirs
	}

	var volumes []string
	for _, entry := range entries {
		switch entry.Name() {
		case "emulated", "self":
			continue
		}
		if entry.IsDir() {
			volumes = append(volumes, entry.Name())
		}
	}
	sort.Strings(volumes)

	for _, volume := range volumes {
		dirs = append(dirs, h.filesDir(filepath.Join(storageMountRoot, volume)))
	}
	return dirs
}

// FallbackDirectory returns the primary volume's files directory. It is
// created when missing, as the system does for the app's own storage.
func (h *Host) FallbackDirectory() string {
	dir := h.filesDir(h.primary)
	_ = os.MkdirAll(dir, 0755)
	return dir
}

func (h *Host) filesDir(volume string) string {
	return filepath.Join(volume, "Android", "data", h.pkg, "files")
}

// detectAndroidApp reads the package name from /proc/self/cmdline
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// cmdline is NUL separated; the package name is the first field
	copied := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 {
			break
		}
		if ch == '\n' {
			continue
		}
		copied = append(copied, ch)
	}

	result := string(copied)
	if result == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}

	return result, nil
}
