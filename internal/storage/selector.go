package storage

import "github.com/zoro11031/extfiles/internal/system"

// MarkerFileName identifies a directory the game has already used.
const MarkerFileName = "diablo.ini"

// SelectStorageRoot picks the storage root among candidates.
//
// The first candidate holding MarkerFileName wins. Failing that, the first
// non-empty candidate wins. Otherwise fallback is returned. Candidates that
// cannot be listed count as empty.
func SelectStorageRoot(fs system.FileSystemManager, candidates []string, fallback string) string {
	listings := make([][]string, len(candidates))
	for i, dir := range candidates {
		listings[i] = listEntries(fs, dir)
	}

	for i, entries := range listings {
		if containsName(entries, MarkerFileName) {
			return candidates[i]
		}
	}

	for i, entries := range listings {
		if len(entries) > 0 {
			return candidates[i]
		}
	}

	return fallback
}

// listEntries returns the immediate entries of dir, or nil if it cannot be read.
func listEntries(fs system.FileSystemManager, dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := fs.ListDirectory(dir)
	if err != nil {
		return nil
	}
	return entries
}

func containsName(entries []string, name string) bool {
	for _, entry := range entries {
		if entry == name {
			return true
		}
	}
	return false
}
