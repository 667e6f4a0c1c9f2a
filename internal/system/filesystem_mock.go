package system

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrInjected is returned by MockFileSystem for every simulated failure.
var ErrInjected = errors.New("injected failure")

// MockFileSystem is a mock of the FileSystem for testing purposes.
// It delegates to the real filesystem and lets tests inject failures
// into individual operations. It implements FileSystemManager.
type MockFileSystem struct {
	FileSystem
	mu sync.Mutex

	// RenameErr, when set, is returned by every Rename call.
	RenameErr error
	// UnlistableDirs are directories whose listing fails.
	UnlistableDirs map[string]bool
	// FailWriteAfter makes writers returned by Create fail once this many
	// bytes have been written. Negative disables the failure.
	FailWriteAfter int64
	// ReadOnly paths report false from CanWrite.
	ReadOnly map[string]bool

	Renames int
	Creates int
	Removed []string

	openHandles int
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		UnlistableDirs: make(map[string]bool),
		ReadOnly:       make(map[string]bool),
		FailWriteAfter: -1,
	}
}

// ListDirectory fails for directories registered in UnlistableDirs.
func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	m.mu.Lock()
	unlistable := m.UnlistableDirs[path]
	m.mu.Unlock()
	if unlistable {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, ErrInjected)
	}
	return m.FileSystem.ListDirectory(path)
}

// Rename counts the call and returns RenameErr if one is configured.
func (m *MockFileSystem) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	m.Renames++
	renameErr := m.RenameErr
	m.mu.Unlock()
	if renameErr != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, renameErr)
	}
	return m.FileSystem.Rename(oldPath, newPath)
}

// Open tracks the returned reader until it is closed.
func (m *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	r, err := m.FileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	return &trackedReader{ReadCloser: r, done: m.track()}, nil
}

// Create counts the call, tracks the writer until it is closed and makes it
// fail when FailWriteAfter is set.
func (m *MockFileSystem) Create(path string) (io.WriteCloser, error) {
	m.mu.Lock()
	m.Creates++
	limit := m.FailWriteAfter
	m.mu.Unlock()

	f, err := m.FileSystem.Create(path)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser = &trackedWriter{WriteCloser: f, done: m.track()}
	if limit >= 0 {
		w = &failingWriter{WriteCloser: w, remaining: limit}
	}
	return w, nil
}

// OpenHandles returns how many readers and writers handed out by Open and
// Create have not been closed yet.
func (m *MockFileSystem) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openHandles
}

// track registers a new handle and returns the func that releases it once.
func (m *MockFileSystem) track() func() {
	m.mu.Lock()
	m.openHandles++
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.openHandles--
			m.mu.Unlock()
		})
	}
}

// RemoveFile records the removed path before delegating.
func (m *MockFileSystem) RemoveFile(path string) error {
	m.mu.Lock()
	m.Removed = append(m.Removed, path)
	m.mu.Unlock()
	return m.FileSystem.RemoveFile(path)
}

// CanWrite reports false for paths registered in ReadOnly.
func (m *MockFileSystem) CanWrite(path string) bool {
	m.mu.Lock()
	readOnly := m.ReadOnly[path]
	m.mu.Unlock()
	if readOnly {
		return false
	}
	return m.FileSystem.CanWrite(path)
}

// failingWriter writes through until its budget runs out, then errors.
type failingWriter struct {
	io.WriteCloser
	remaining int64
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if int64(len(p)) <= w.remaining {
		n, err := w.WriteCloser.Write(p)
		w.remaining -= int64(n)
		return n, err
	}
	n, err := w.WriteCloser.Write(p[:w.remaining])
	w.remaining -= int64(n)
	if err != nil {
		return n, err
	}
	return n, ErrInjected
}

type trackedReader struct {
	io.ReadCloser
	done func()
}

func (r *trackedReader) Close() error {
	r.done()
	return r.ReadCloser.Close()
}

type trackedWriter struct {
	io.WriteCloser
	done func()
}

func (w *trackedWriter) Close() error {
	w.done()
	return w.WriteCloser.Close()
}
