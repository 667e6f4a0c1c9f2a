package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/extfiles/internal/system"
	"github.com/zoro11031/extfiles/internal/ui"
)

type testPlatform struct {
	candidates []string
	fallback   string
}

func (p testPlatform) ListCandidateDirectories() []string { return p.candidates }
func (p testPlatform) FallbackDirectory() string          { return p.fallback }

type recordedMigration struct {
	source      string
	destination string
	outcome     Outcome
}

type memoryRecorder struct {
	records []recordedMigration
}

func (r *memoryRecorder) Record(source, destination string, outcome Outcome) error {
	r.records = append(r.records, recordedMigration{source, destination, outcome})
	return nil
}

func mkdir(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

func writeFile(t *testing.T, path string, content []byte) string {
	t.Helper()
	mkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestSelectStorageRoot(t *testing.T) {
	tmpDir := t.TempDir()
	empty1 := mkdir(t, filepath.Join(tmpDir, "empty1"))
	empty2 := mkdir(t, filepath.Join(tmpDir, "empty2"))
	nonEmpty1 := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "nonempty1", "diabdat.mpq"), nil))
	nonEmpty2 := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "nonempty2", "spawn.mpq"), nil))
	withMarker := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "marker", MarkerFileName), nil))
	missing := filepath.Join(tmpDir, "missing")
	fallback := filepath.Join(tmpDir, "fallback")

	tests := []struct {
		name       string
		candidates []string
		expected   string
	}{
		{
			name:       "marker wins over earlier non-empty directory",
			candidates: []string{nonEmpty1, withMarker},
			expected:   withMarker,
		},
		{
			name:       "marker wins over later non-empty directory",
			candidates: []string{empty1, withMarker, nonEmpty2},
			expected:   withMarker,
		},
		{
			name:       "first non-empty directory without marker",
			candidates: []string{empty1, nonEmpty2, nonEmpty1},
			expected:   nonEmpty2,
		},
		{
			name:       "all empty falls back",
			candidates: []string{empty1, empty2},
			expected:   fallback,
		},
		{
			name:       "no candidates falls back",
			candidates: nil,
			expected:   fallback,
		},
		{
			name:       "missing and blank candidates are treated as empty",
			candidates: []string{missing, "", nonEmpty1},
			expected:   nonEmpty1,
		},
	}

	fs := system.NewFileSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectStorageRoot(fs, tt.candidates, fallback)
			if got != tt.expected {
				t.Errorf("SelectStorageRoot() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSelectStorageRootUnlistableCandidate(t *testing.T) {
	tmpDir := t.TempDir()
	withMarker := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "marker", MarkerFileName), nil))
	nonEmpty := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "nonempty", "diabdat.mpq"), nil))

	mock := system.NewMockFileSystem()
	mock.UnlistableDirs[withMarker] = true

	got := SelectStorageRoot(mock, []string{withMarker, nonEmpty}, "/fallback")
	if got != nonEmpty {
		t.Errorf("SelectStorageRoot() = %v, want %v", got, nonEmpty)
	}
}

func TestManagerFileLookup(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Dir(writeFile(t, filepath.Join(tmpDir, "root", "diabdat.mpq"), []byte("data")))

	m := NewManager(testPlatform{candidates: []string{root}, fallback: tmpDir}, nil, nil)

	if m.Root() != root {
		t.Fatalf("Root() = %v, want %v", m.Root(), root)
	}
	if !m.HasFile("diabdat.mpq") {
		t.Error("HasFile(diabdat.mpq) = false, want true")
	}
	if m.HasFile("hellfire.mpq") {
		t.Error("HasFile(hellfire.mpq) = true, want false")
	}
	if got, want := m.GetFile("hellfire.mpq"), root+"/hellfire.mpq"; got != want {
		t.Errorf("GetFile() = %v, want %v", got, want)
	}
}

func TestMigrateRename(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))
	source := writeFile(t, filepath.Join(tmpDir, "old", "diablo.mpq"), []byte("archive"))

	mock := system.NewMockFileSystem()
	m := NewManager(testPlatform{fallback: root}, mock, nil)
	recorder := &memoryRecorder{}
	m.SetRecorder(recorder)

	m.Migrate(source)

	destination := filepath.Join(root, "diablo.mpq")
	if !exists(destination) {
		t.Error("destination does not exist after migration")
	}
	if exists(source) {
		t.Error("source still exists after migration")
	}
	if mock.Creates != 0 {
		t.Errorf("Creates = %d, want 0 (no copy expected)", mock.Creates)
	}
	if len(recorder.records) != 1 || recorder.records[0].outcome != OutcomeRenamed {
		t.Errorf("records = %+v, want one %v", recorder.records, OutcomeRenamed)
	}
	if recorder.records[0].destination != destination {
		t.Errorf("recorded destination = %v, want %v", recorder.records[0].destination, destination)
	}
}

func TestMigrateCopyFallback(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))

	// Larger than one chunk and not a multiple of it.
	content := bytes.Repeat([]byte("0123456789abcdef"), 200)
	content = append(content, []byte("tail")...)
	source := writeFile(t, filepath.Join(tmpDir, "old", "diabdat.mpq"), content)

	mock := system.NewMockFileSystem()
	mock.RenameErr = system.ErrInjected
	m := NewManager(testPlatform{fallback: root}, mock, nil)

	destination := filepath.Join(root, "diabdat.mpq")
	if got := m.migrate(source, destination); got != OutcomeCopied {
		t.Fatalf("migrate() = %v, want %v", got, OutcomeCopied)
	}

	got, err := os.ReadFile(destination)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("destination content differs from source (%d vs %d bytes)", len(got), len(content))
	}
	if exists(source) {
		t.Error("source still exists after copy")
	}
	if got := mock.OpenHandles(); got != 0 {
		t.Errorf("OpenHandles() = %d after copy, want 0", got)
	}
}

func TestMigrateCopyFailure(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))
	content := bytes.Repeat([]byte{0xAB}, 5000)
	source := writeFile(t, filepath.Join(tmpDir, "old", "diabdat.mpq"), content)

	mock := system.NewMockFileSystem()
	mock.RenameErr = system.ErrInjected
	mock.FailWriteAfter = 2048

	var logs bytes.Buffer
	m := NewManager(testPlatform{fallback: root}, mock, ui.NewWithWriter(&logs))
	recorder := &memoryRecorder{}
	m.SetRecorder(recorder)

	m.Migrate(source)

	if exists(filepath.Join(root, "diabdat.mpq")) {
		t.Error("partial destination was not removed")
	}
	got, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("source missing after failed copy: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("source was modified by failed copy")
	}
	if !strings.Contains(logs.String(), "copyFile") {
		t.Errorf("expected copy failure to be logged, got %q", logs.String())
	}
	if len(recorder.records) != 1 || recorder.records[0].outcome != OutcomeCopyFailed {
		t.Errorf("records = %+v, want one %v", recorder.records, OutcomeCopyFailed)
	}
	if got := mock.OpenHandles(); got != 0 {
		t.Errorf("OpenHandles() = %d after failed copy, want 0", got)
	}
}

func TestMigrateCopyCreateFailure(t *testing.T) {
	tmpDir := t.TempDir()
	// The root is never created, so the destination cannot be opened.
	root := filepath.Join(tmpDir, "missing-root")
	source := writeFile(t, filepath.Join(tmpDir, "old", "hellfire.mpq"), []byte("hellfire"))

	mock := system.NewMockFileSystem()
	m := NewManager(testPlatform{fallback: root}, mock, nil)

	if got := m.migrate(source, filepath.Join(root, "hellfire.mpq")); got != OutcomeCopyFailed {
		t.Fatalf("migrate() = %v, want %v", got, OutcomeCopyFailed)
	}
	if !exists(source) {
		t.Error("source removed after failed copy")
	}
	if got := mock.OpenHandles(); got != 0 {
		t.Errorf("OpenHandles() = %d, want 0 (source reader left open)", got)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))
	source := writeFile(t, filepath.Join(tmpDir, "old", "single_0.sv"), []byte("hero"))

	m := NewManager(testPlatform{fallback: root}, nil, nil)
	destination := filepath.Join(root, "single_0.sv")

	if got := m.migrate(source, destination); got != OutcomeRenamed {
		t.Fatalf("first migrate() = %v, want %v", got, OutcomeRenamed)
	}
	if got := m.migrate(source, destination); got != OutcomeAlreadyMigrated {
		t.Fatalf("second migrate() = %v, want %v", got, OutcomeAlreadyMigrated)
	}

	data, err := os.ReadFile(destination)
	if err != nil || string(data) != "hero" {
		t.Errorf("destination = %q, %v; want %q", data, err, "hero")
	}
	if exists(source) {
		t.Error("source exists after repeated migration")
	}
}

func TestMigrateAlreadyMigrated(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))
	writeFile(t, filepath.Join(root, "diablo.mpq"), []byte("new"))

	tests := []struct {
		name          string
		readOnly      bool
		sourceRemains bool
	}{
		{name: "writable source is deleted", readOnly: false, sourceRemains: false},
		{name: "read-only source is kept", readOnly: true, sourceRemains: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := writeFile(t, filepath.Join(t.TempDir(), "diablo.mpq"), []byte("old"))

			mock := system.NewMockFileSystem()
			if tt.readOnly {
				mock.ReadOnly[source] = true
			}
			m := NewManager(testPlatform{fallback: root}, mock, nil)

			if got := m.migrate(source, m.destinationFor(source)); got != OutcomeAlreadyMigrated {
				t.Fatalf("migrate() = %v, want %v", got, OutcomeAlreadyMigrated)
			}
			if exists(source) != tt.sourceRemains {
				t.Errorf("source exists = %v, want %v", exists(source), tt.sourceRemains)
			}
			if mock.Renames != 0 {
				t.Errorf("Renames = %d, want 0", mock.Renames)
			}
			if tt.readOnly && len(mock.Removed) != 0 {
				t.Errorf("Removed = %v, want nothing removed", mock.Removed)
			}

			data, _ := os.ReadFile(filepath.Join(root, "diablo.mpq"))
			if string(data) != "new" {
				t.Errorf("destination = %q, want %q", data, "new")
			}
		})
	}
}

func TestMigrateMissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	root := mkdir(t, filepath.Join(tmpDir, "root"))

	m := NewManager(testPlatform{fallback: root}, nil, nil)
	source := filepath.Join(tmpDir, "old", "diablo.mpq")

	if got := m.migrate(source, m.destinationFor(source)); got != OutcomeCopyFailed {
		t.Errorf("migrate() = %v, want %v", got, OutcomeCopyFailed)
	}
	if exists(filepath.Join(root, "diablo.mpq")) {
		t.Error("destination created for missing source")
	}
}

func TestOutcomeString(t *testing.T) {
	for _, o := range []Outcome{OutcomeRenamed, OutcomeCopied, OutcomeAlreadyMigrated, OutcomeCopyFailed} {
		parsed, err := ParseOutcome(o.String())
		if err != nil {
			t.Fatalf("ParseOutcome(%q) error = %v", o.String(), err)
		}
		if parsed != o {
			t.Errorf("ParseOutcome(%q) = %v, want %v", o.String(), parsed, o)
		}
	}
	if _, err := ParseOutcome("bogus"); err == nil {
		t.Error("ParseOutcome(bogus) error = nil, want error")
	}
}
