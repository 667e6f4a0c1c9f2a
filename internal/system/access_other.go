//go:build !unix

package system

import "os"

// CanWrite reports whether the current process may write to path.
// A missing path is not writable. Directories are judged by their
// permission bits, files by opening them for writing.
func (fs *FileSystem) CanWrite(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return info.Mode().Perm()&0200 != 0
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
