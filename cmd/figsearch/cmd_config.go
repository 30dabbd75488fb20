package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configCmd groups the configuration file commands.
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(a.configInitCmd())

	return cmd
}

// configInitCmd writes the effective configuration to disk.
func (a *app) configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the current settings as a YAML config file",
		Long: `Writes the effective configuration (defaults, then the file named by
--config if present, then FIGSEARCH_* variables and flags) to PATH, or to
the --config path when PATH is omitted. An existing file is kept unless
--force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := a.cfg.Save(path); err != nil {
				return err
			}
			a.logger.Debug("Configuration written", zap.String("path", path))
			fmt.Fprintln(a.stdout, path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
