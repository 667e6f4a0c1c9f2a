package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	migrateForce bool
	migrateFrom  string
	migrateRetry bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [FILE...]",
	Short: "Move legacy files into the storage root",
	Long: `Move files into the storage root, keeping their names.

Each file is renamed when possible and copied otherwise. A file whose name
already exists in the storage root is treated as migrated and the legacy copy
is removed. A failed copy leaves the source file untouched; use --retry later.

Use --from to pick files from a legacy directory instead of listing them.`,
	RunE: migrateFiles,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateForce, "force", "f", false, "Skip confirmation prompt")
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "Legacy directory to migrate files from")
	migrateCmd.Flags().BoolVar(&migrateRetry, "retry", false, "Retry files whose last migration failed")
	rootCmd.AddCommand(migrateCmd)
}

func migrateFiles(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	if migrateRetry {
		n := ctx.RetryPending()
		ctx.UI.Infof("Retried %d file(s)", n)
		return nil
	}

	sources := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		sources = append(sources, abs)
	}

	if migrateFrom != "" {
		files, err := ctx.LegacyFiles(migrateFrom)
		if err != nil {
			return fmt.Errorf("failed to list legacy files: %w", err)
		}
		if len(files) == 0 {
			ctx.UI.Infof("No files found in %s", migrateFrom)
			return nil
		}

		names := make([]string, len(files))
		for i, f := range files {
			names[i] = filepath.Base(f)
		}
		selected, err := ctx.UI.PromptMultiSelect("Files to migrate", names)
		if err != nil {
			return err
		}
		for _, i := range selected {
			sources = append(sources, files[i])
		}
	}

	if len(sources) == 0 {
		return fmt.Errorf("nothing to migrate: pass files, --from DIR or --retry")
	}

	if !migrateForce {
		ctx.UI.Infof("%d file(s) will be moved into %s", len(sources), ctx.Manager.Root())
		confirm, err := ctx.UI.PromptYesNo("Continue?", true)
		if err != nil {
			return err
		}
		if !confirm {
			ctx.UI.Info("Migration cancelled")
			return nil
		}
	}

	ctx.MigrateFiles(sources)
	return nil
}
