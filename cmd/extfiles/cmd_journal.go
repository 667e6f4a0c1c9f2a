package main

import (
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded migration outcomes",
	Args:  cobra.NoArgs,
	RunE:  showJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)
}

func showJournal(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	entries := ctx.Journal.Entries()
	if len(entries) == 0 {
		ctx.UI.Info("No migrations recorded")
		return nil
	}

	for _, e := range entries {
		ctx.UI.Printf("%s  %-16s %s -> %s", e.At.Local().Format("2006-01-02 15:04:05"), e.Outcome, e.Source, e.Destination)
	}
	return nil
}
