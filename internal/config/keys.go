package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Storage selection
	KeyCandidateDirs = "CANDIDATE_DIRS" // Ordered list, joined with the OS path-list separator
	KeyFallbackDir   = "FALLBACK_DIR"

	// Migration journal
	KeyJournalApp = "JOURNAL_APP"
)

// Defaults holds values used when a key is absent from the file
var Defaults = map[string]string{
	KeyJournalApp: "extfiles",
}

// Keys lists every recognised configuration key
func Keys() []string {
	return []string{KeyCandidateDirs, KeyFallbackDir, KeyJournalApp}
}
