// Package cli wires configuration, host detection, the storage manager and
// the migration journal together for the extfiles commands.
package cli

import (
	"fmt"

	"github.com/zoro11031/extfiles/internal/config"
	"github.com/zoro11031/extfiles/internal/journal"
	"github.com/zoro11031/extfiles/internal/platform"
	"github.com/zoro11031/extfiles/internal/storage"
	"github.com/zoro11031/extfiles/internal/system"
	"github.com/zoro11031/extfiles/internal/ui"
)

// Options are the command-line overrides. Empty fields defer to the
// environment, then the config file, then host detection.
type Options struct {
	ConfigFile     string
	Candidates     []string
	Fallback       string
	NonInteractive bool
}

// Context holds all dependencies needed by the commands
type Context struct {
	Config   *config.Config
	Settings config.Settings
	UI       *ui.UI
	FS       system.FileSystemManager
	Platform platform.Static
	Manager  *storage.Manager
	Journal  *journal.Journal
}

// NewContext creates a Context with all dependencies initialized
func NewContext(opts Options) (*Context, error) {
	return newContext(opts, ui.New())
}

func newContext(opts Options, uiInstance *ui.UI) (*Context, error) {
	uiInstance.SetNonInteractive(opts.NonInteractive)

	overrides, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = overrides.ConfigFile
	}
	cfg := config.New(configFile)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	settings := config.Resolve(cfg, overrides)
	if len(opts.Candidates) > 0 {
		settings.CandidateDirs = opts.Candidates
	}
	if opts.Fallback != "" {
		settings.FallbackDir = opts.Fallback
	}

	host, err := platform.Detect()
	if err != nil {
		return nil, fmt.Errorf("failed to detect host storage: %w", err)
	}
	provider := platform.Override(host, settings.CandidateDirs, settings.FallbackDir)

	j, err := journal.Open(settings.JournalApp)
	if err != nil {
		uiInstance.Warningf("Migration journal unavailable, outcomes will not be saved: %v", err)
		j, _ = journal.New(nil)
	}

	fs := system.NewFileSystem()
	manager := storage.NewManager(provider, fs, uiInstance)
	manager.SetRecorder(&reportingRecorder{journal: j, ui: uiInstance})

	return &Context{
		Config:   cfg,
		Settings: settings,
		UI:       uiInstance,
		FS:       fs,
		Platform: provider,
		Manager:  manager,
		Journal:  j,
	}, nil
}
