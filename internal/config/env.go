package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings taken from the environment. Empty fields
// leave the file configuration untouched.
type EnvOverrides struct {
	ConfigFile    string   `env:"EXTFILES_CONFIG"`
	CandidateDirs []string `env:"EXTFILES_CANDIDATE_DIRS" envSeparator:":"`
	FallbackDir   string   `env:"EXTFILES_FALLBACK_DIR"`
	JournalApp    string   `env:"EXTFILES_JOURNAL_APP"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return overrides, nil
}

// Settings is the effective configuration after applying overrides.
type Settings struct {
	CandidateDirs []string
	FallbackDir   string
	JournalApp    string
}

// Resolve merges the file configuration with environment overrides.
// Environment values win over the file.
func Resolve(cfg *Config, overrides EnvOverrides) Settings {
	s := Settings{
		CandidateDirs: cfg.CandidateDirs(),
		FallbackDir:   cfg.FallbackDir(),
		JournalApp:    cfg.JournalApp(),
	}

	if dirs := compactDirs(overrides.CandidateDirs); len(dirs) > 0 {
		s.CandidateDirs = dirs
	}
	if overrides.FallbackDir != "" {
		s.FallbackDir = overrides.FallbackDir
	}
	if overrides.JournalApp != "" {
		s.JournalApp = overrides.JournalApp
	}

	return s
}
