package storage

import (
	"fmt"
	"io"
	"path/filepath"
)

// copyBufferSize is the chunk size used when a rename has to fall back to a copy.
const copyBufferSize = 1024

// Outcome describes how a single migration ended
type Outcome int

const (
	// OutcomeRenamed means the source was moved with a single rename.
	OutcomeRenamed Outcome = iota
	// OutcomeCopied means the rename failed and the file was copied instead.
	OutcomeCopied
	// OutcomeAlreadyMigrated means the destination was already present.
	OutcomeAlreadyMigrated
	// OutcomeCopyFailed means the copy fallback failed and the source was kept.
	OutcomeCopyFailed
)

// String returns the outcome name used in logs and the journal
func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomeCopied:
		return "copied"
	case OutcomeAlreadyMigrated:
		return "already-migrated"
	case OutcomeCopyFailed:
		return "copy-failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	for _, o := range []Outcome{OutcomeRenamed, OutcomeCopied, OutcomeAlreadyMigrated, OutcomeCopyFailed} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown migration outcome: %s", s)
}

// Migrate moves source into the storage root, keeping its base name.
//
// Errors are never returned. If the copy fallback fails, the partial
// destination is removed and the source is left in place so a later run can
// retry.
func (m *Manager) Migrate(source string) {
	destination := m.destinationFor(source)
	outcome := m.migrate(source, destination)

	if m.recorder != nil {
		if err := m.recorder.Record(source, destination, outcome); err != nil {
			m.log.Warningf("Failed to record migration of %s: %v", source, err)
		}
	}
}

func (m *Manager) destinationFor(source string) string {
	return filepath.Join(m.root, filepath.Base(source))
}

func (m *Manager) migrate(source, destination string) Outcome {
	if exists, _ := m.fs.FileExists(destination); exists {
		m.removeSourceIfWritable(source)
		return OutcomeAlreadyMigrated
	}

	if err := m.fs.Rename(source, destination); err == nil {
		return OutcomeRenamed
	}

	if err := m.copyFile(source, destination); err != nil {
		m.log.Errorf("copyFile: %v", err)
		if exists, _ := m.fs.FileExists(destination); exists {
			_ = m.fs.RemoveFile(destination)
		}
		return OutcomeCopyFailed
	}

	m.removeSourceIfWritable(source)
	return OutcomeCopied
}

// removeSourceIfWritable deletes source on a best-effort basis
func (m *Manager) removeSourceIfWritable(source string) {
	if m.fs.CanWrite(source) {
		_ = m.fs.RemoveFile(source)
	}
}

// copyFile copies src to dst in copyBufferSize chunks. Both files are closed
// before it returns, whatever the result.
func (m *Manager) copyFile(src, dst string) (err error) {
	in, err := m.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := m.fs.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dst, closeErr)
		}
	}()

	buf := make([]byte, copyBufferSize)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("failed to write %s: %w", dst, writeErr)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", src, readErr)
		}
	}
}
