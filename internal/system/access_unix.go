//go:build unix

package system

import "golang.org/x/sys/unix"

// CanWrite reports whether the current process may write to path.
// A missing path is not writable.
func (fs *FileSystem) CanWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
