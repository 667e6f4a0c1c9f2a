package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	resetForce        bool
	resetDeleteConfig bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the migration journal",
	Long: `Forget every recorded migration outcome.

Files are never touched. By default the configuration file is kept;
use --delete-config to delete it as well.`,
	Args: cobra.NoArgs,
	RunE: resetJournal,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
	resetCmd.Flags().BoolVar(&resetDeleteConfig, "delete-config", false, "Also delete the configuration file")
	rootCmd.AddCommand(resetCmd)
}

func resetJournal(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	if !resetForce {
		ctx.UI.Header("Reset Migration Journal")
		ctx.UI.Warningf("This will forget %d recorded migration(s)", len(ctx.Journal.Entries()))
		if resetDeleteConfig {
			ctx.UI.Warning("Configuration file will also be DELETED")
			ctx.UI.Warningf("  %s", ctx.Config.FilePath())
		}
		ctx.UI.Print("")

		confirm, err := ctx.UI.PromptYesNo("Are you sure you want to reset?", false)
		if err != nil {
			return err
		}
		if !confirm {
			ctx.UI.Info("Reset cancelled")
			return nil
		}
	}

	if err := ctx.Journal.Clear(); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	ctx.UI.Successf("Migration journal cleared")

	if resetDeleteConfig {
		configPath := ctx.Config.FilePath()
		if err := os.Remove(configPath); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}
			ctx.UI.Info("  (Config file did not exist)")
		} else {
			ctx.UI.Successf("Configuration file deleted: %s", configPath)
		}
	}

	return nil
}
