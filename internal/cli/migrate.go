package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/zoro11031/extfiles/internal/storage"
)

// LegacyFiles lists the regular files directly inside dir, sorted by name.
func (c *Context) LegacyFiles(dir string) ([]string, error) {
	isDir, err := c.FS.DirectoryExists(dir)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	names, err := c.FS.ListDirectory(dir)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var files []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if regular, err := c.FS.IsRegularFile(path); err != nil || !regular {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// MigrateFiles migrates every source into the storage root.
// Outcomes are reported through the UI and the journal as they happen.
func (c *Context) MigrateFiles(sources []string) {
	for _, source := range sources {
		c.Manager.Migrate(source)
	}
}

// RetryPending migrates again every source whose last attempt failed and
// which still exists. It returns the number of files retried.
func (c *Context) RetryPending() int {
	var retry []string
	for _, source := range c.Journal.Pending() {
		if exists, _ := c.FS.FileExists(source); exists {
			retry = append(retry, source)
		}
	}
	c.MigrateFiles(retry)
	return len(retry)
}

// CandidateStatus describes one candidate directory as the selector sees it
type CandidateStatus struct {
	Path      string
	Readable  bool
	HasMarker bool
	Entries   int
	Selected  bool
}

// Candidates reports every candidate directory in selection order
func (c *Context) Candidates() []CandidateStatus {
	root := c.Manager.Root()

	var statuses []CandidateStatus
	for _, dir := range c.Platform.ListCandidateDirectories() {
		status := CandidateStatus{Path: dir, Selected: dir == root}
		if names, err := c.FS.ListDirectory(dir); err == nil {
			status.Readable = true
			status.Entries = len(names)
			for _, name := range names {
				if name == storage.MarkerFileName {
					status.HasMarker = true
				}
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// UsingFallback reports whether no candidate was selected
func (c *Context) UsingFallback() bool {
	for _, s := range c.Candidates() {
		if s.Selected {
			return false
		}
	}
	return true
}

// DescribeRoot returns a one-line summary of the selected root
func (c *Context) DescribeRoot() string {
	if c.UsingFallback() {
		return fmt.Sprintf("%s (fallback)", c.Manager.Root())
	}
	return c.Manager.Root()
}
