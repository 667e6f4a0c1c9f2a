package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/extfiles/internal/common"
	"github.com/zoro11031/extfiles/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change the configuration file",
	Long: `Manage the extfiles configuration file.

Keys:
  CANDIDATE_DIRS  Candidate directories, in order, separated by ':'
  FALLBACK_DIR    Directory used when no candidate qualifies
  JOURNAL_APP     Name the migration journal is stored under`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		fmt.Println(ctx.Config.GetOrDefault(args[0], ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := common.ValidateOneOf(key, config.Keys()); err != nil {
			return err
		}
		if key == config.KeyFallbackDir {
			if err := common.ValidatePath(value); err != nil {
				return err
			}
		}

		ctx, err := newContext()
		if err != nil {
			return err
		}
		if err := ctx.Config.Set(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		ctx.UI.Successf("%s=%s", key, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		if err := ctx.Config.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to unset %s: %w", args[0], err)
		}
		ctx.UI.Successf("%s removed", args[0])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}

		all := ctx.Config.GetAll()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s=%s\n", k, all[k])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
