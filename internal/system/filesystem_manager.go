package system

import "io"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	ListDirectory(path string) ([]string, error)
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	IsRegularFile(path string) (bool, error)
	Rename(oldPath, newPath string) error
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	RemoveFile(path string) error
	CanWrite(path string) bool
}
