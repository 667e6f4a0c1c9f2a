package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/extfiles/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the selected storage root",
	Long:  `Display the candidate directories, which one was selected, and pending migrations.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	ctx.UI.Header("External Storage Status")

	candidates := ctx.Candidates()
	if len(candidates) == 0 {
		ctx.UI.Info("No candidate directories supplied")
	}
	for i, c := range candidates {
		switch {
		case !c.Readable:
			ctx.UI.Candidate(i, c.Path, c.Selected, "not readable")
		case c.HasMarker:
			ctx.UI.Candidate(i, c.Path, c.Selected, fmt.Sprintf("%d entries, has %s", c.Entries, storage.MarkerFileName))
		default:
			ctx.UI.Candidate(i, c.Path, c.Selected, fmt.Sprintf("%d entries", c.Entries))
		}
	}
	ctx.UI.Print("")

	ctx.UI.Rule()
	ctx.UI.Successf("Storage root: %s", ctx.DescribeRoot())
	ctx.UI.Infof("Fallback: %s", ctx.Platform.FallbackDirectory())
	ctx.UI.Rule()

	if pending := ctx.Journal.Pending(); len(pending) > 0 {
		ctx.UI.Warningf("%d file(s) waiting for a migration retry (run 'extfiles migrate --retry')", len(pending))
	}

	if _, err := os.Stat(ctx.Config.FilePath()); err == nil {
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
	}

	fmt.Println(ctx.Manager.Root())
	return nil
}
