// Package common holds input validation shared by the extfiles commands.
package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePath validates that a path is absolute
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}
	return nil
}

// ValidateFileName validates a bare file name that will be joined onto the
// storage root. Separators and dot entries would escape the root.
func ValidateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name cannot contain path separators: %s", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("file name cannot be '.' or '..': %s", name)
	}
	return nil
}

// ValidateOneOf validates that value is one of allowed
func ValidateOneOf(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q (expected one of: %s)", value, strings.Join(allowed, ", "))
}
