package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/extfiles/internal/cli"
	"github.com/zoro11031/extfiles/pkg/version"
)

var (
	configFile     string
	candidateDirs  []string
	fallbackDir    string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "extfiles",
	Short: "External storage selection and legacy file migration",
	Long: `Pick the external storage directory used for game data and move legacy
files into it.

The storage root is chosen from the candidate directories in order:
  1. the first directory containing diablo.ini
  2. otherwise the first non-empty directory
  3. otherwise the fallback directory

Candidates come from --candidate, EXTFILES_CANDIDATE_DIRS, the config file,
or the host platform, in that order of precedence.

Run without arguments to show the current status.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          showStatus,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to the config file (default ~/.extfiles.conf)")
	flags.StringArrayVar(&candidateDirs, "candidate", nil, "Candidate storage directory (repeatable, in preference order)")
	flags.StringVar(&fallbackDir, "fallback", "", "Directory used when no candidate qualifies")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; assume defaults")

	rootCmd.AddCommand(versionCmd)
}

// newContext builds the command context from the persistent flags
func newContext() (*cli.Context, error) {
	ctx, err := cli.NewContext(cli.Options{
		ConfigFile:     configFile,
		Candidates:     candidateDirs,
		Fallback:       fallbackDir,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize context: %w", err)
	}
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
