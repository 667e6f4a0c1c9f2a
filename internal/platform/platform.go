// Package platform reports the storage directories offered by the host.
//
// On Android the candidates are the app-specific "files" directories of every
// mounted storage volume, primary volume first. Elsewhere there are no
// candidates and the fallback lives under the user config directory. A Static
// provider lets the CLI or tests supply the list directly.
package platform

// AppDirName names the per-user fallback directory outside Android
const AppDirName = "extfiles"

// Static is a fixed candidate list with a fixed fallback
type Static struct {
	Candidates []string
	Fallback   string
}

// ListCandidateDirectories returns a copy of the configured candidates
func (s Static) ListCandidateDirectories() []string {
	dirs := make([]string, len(s.Candidates))
	copy(dirs, s.Candidates)
	return dirs
}

// FallbackDirectory returns the configured fallback
func (s Static) FallbackDirectory() string {
	return s.Fallback
}

// Override returns a provider that uses candidates and fallback where they are
// set and base otherwise.
func Override(base Provider, candidates []string, fallback string) Static {
	s := Static{Candidates: candidates, Fallback: fallback}
	if len(s.Candidates) == 0 {
		s.Candidates = base.ListCandidateDirectories()
	}
	if s.Fallback == "" {
		s.Fallback = base.FallbackDirectory()
	}
	return s
}

// Provider matches storage.DirectoryProvider without importing it
type Provider interface {
	ListCandidateDirectories() []string
	FallbackDirectory() string
}
