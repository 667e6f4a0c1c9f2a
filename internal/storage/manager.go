// Package storage selects the external storage root for game data and moves
// legacy files into it. Selection happens once, when a Manager is created;
// migration is best-effort and never reports failure to the caller.
package storage

import (
	"io"
	"path/filepath"

	"github.com/zoro11031/extfiles/internal/system"
	"github.com/zoro11031/extfiles/internal/ui"
)

// DirectoryProvider supplies the storage locations offered by the host platform.
type DirectoryProvider interface {
	// ListCandidateDirectories returns the candidate directories in preference order.
	ListCandidateDirectories() []string
	// FallbackDirectory is used when no candidate qualifies.
	FallbackDirectory() string
}

// Logger receives diagnostics. *ui.UI satisfies it.
type Logger interface {
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Recorder is notified of every migration outcome.
type Recorder interface {
	Record(source, destination string, outcome Outcome) error
}

// Manager owns the storage root chosen at construction
type Manager struct {
	fs       system.FileSystemManager
	log      Logger
	recorder Recorder
	root     string
}

// NewManager selects the storage root from platform and returns a Manager bound to it.
// A nil fs uses the OS filesystem; a nil log discards output.
func NewManager(platform DirectoryProvider, fs system.FileSystemManager, log Logger) *Manager {
	if fs == nil {
		fs = system.NewFileSystem()
	}
	if log == nil {
		log = ui.NewWithWriter(io.Discard)
	}

	return &Manager{
		fs:   fs,
		log:  log,
		root: SelectStorageRoot(fs, platform.ListCandidateDirectories(), platform.FallbackDirectory()),
	}
}

// SetRecorder installs r to receive migration outcomes. Pass nil to disable.
func (m *Manager) SetRecorder(r Recorder) {
	m.recorder = r
}

// Root returns the selected storage root
func (m *Manager) Root() string {
	return m.root
}

// HasFile reports whether an entry called name exists directly under the root.
func (m *Manager) HasFile(name string) bool {
	exists, err := m.fs.FileExists(m.GetFile(name))
	if err != nil {
		return false
	}
	return exists
}

// GetFile returns the path of name inside the root. It does not touch the disk.
func (m *Manager) GetFile(name string) string {
	return filepath.Join(m.root, name)
}
