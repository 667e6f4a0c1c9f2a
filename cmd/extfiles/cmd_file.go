package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/extfiles/internal/common"
)

var hasCmd = &cobra.Command{
	Use:   "has NAME",
	Short: "Check whether a file exists in the storage root",
	Long:  `Exit with status 0 if NAME exists directly under the storage root, 1 otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE:  hasFile,
}

var pathCmd = &cobra.Command{
	Use:   "path NAME",
	Short: "Print the full path of a file in the storage root",
	Long:  `Print where NAME lives (or would live) under the storage root. The file need not exist.`,
	Args:  cobra.ExactArgs(1),
	RunE:  filePath,
}

func init() {
	rootCmd.AddCommand(hasCmd)
	rootCmd.AddCommand(pathCmd)
}

func hasFile(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := common.ValidateFileName(name); err != nil {
		return err
	}

	ctx, err := newContext()
	if err != nil {
		return err
	}

	if !ctx.Manager.HasFile(name) {
		return fmt.Errorf("%s not found in %s", name, ctx.Manager.Root())
	}
	fmt.Println(ctx.Manager.GetFile(name))
	return nil
}

func filePath(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := common.ValidateFileName(name); err != nil {
		return err
	}

	ctx, err := newContext()
	if err != nil {
		return err
	}

	fmt.Println(ctx.Manager.GetFile(name))
	return nil
}
