// Package journal keeps a short history of migration outcomes so that a later
// run can tell which legacy files still wait for a retry.
package journal

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/zoro11031/extfiles/internal/storage"
)

// MaxEntries caps the journal; older entries are dropped first
const MaxEntries = 100

// gdata storage keys
const (
	journalObject   = "migrations"
	journalProperty = "journal.yaml"
)

// Entry is one recorded migration
type Entry struct {
	Source      string    `yaml:"source"`
	Destination string    `yaml:"destination"`
	Outcome     string    `yaml:"outcome"`
	At          time.Time `yaml:"at"`
}

// Result parses the stored outcome
func (e Entry) Result() (storage.Outcome, error) {
	return storage.ParseOutcome(e.Outcome)
}

type journalFile struct {
	Entries []Entry `yaml:"entries"`
}

// Journal records migration outcomes through gdata.
// A nil store keeps entries in memory only.
type Journal struct {
	mu      sync.Mutex
	store   *gdata.Manager
	entries []Entry
	now     func() time.Time
}

// Open opens the journal stored for appName
func Open(appName string) (*Journal, error) {
	store, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal storage: %w", err)
	}
	return New(store)
}

// New wraps an existing gdata manager and loads any saved entries
func New(store *gdata.Manager) (*Journal, error) {
	j := &Journal{
		store: store,
		now:   time.Now,
	}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *Journal) load() error {
	if j.store == nil || !j.store.ObjectPropExists(journalObject, journalProperty) {
		return nil
	}

	data, err := j.store.LoadObjectProp(journalObject, journalProperty)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}

	var file journalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse journal: %w", err)
	}
	j.entries = file.Entries
	return nil
}

// save must be called with j.mu held
func (j *Journal) save() error {
	if j.store == nil {
		return nil
	}

	data, err := yaml.Marshal(journalFile{Entries: j.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}
	if err := j.store.SaveObjectProp(journalObject, journalProperty, data); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

// Record appends an entry and persists the journal. It implements storage.Recorder.
func (j *Journal) Record(source, destination string, outcome storage.Outcome) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, Entry{
		Source:      source,
		Destination: destination,
		Outcome:     outcome.String(),
		At:          j.now().UTC(),
	})
	if len(j.entries) > MaxEntries {
		j.entries = append([]Entry(nil), j.entries[len(j.entries)-MaxEntries:]...)
	}
	return j.save()
}

// Entries returns a copy of the recorded entries, oldest first
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := make([]Entry, len(j.entries))
	copy(entries, j.entries)
	return entries
}

// Pending returns the sources whose latest recorded outcome is a failed copy
func (j *Journal) Pending() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := make(map[string]string)
	var order []string
	for _, e := range j.entries {
		if _, seen := latest[e.Source]; !seen {
			order = append(order, e.Source)
		}
		latest[e.Source] = e.Outcome
	}

	var pending []string
	for _, source := range order {
		if latest[source] == storage.OutcomeCopyFailed.String() {
			pending = append(pending, source)
		}
	}
	return pending
}

// Clear drops every entry
func (j *Journal) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = nil
	return j.save()
}
