package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/pgp-icons/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a file",
		Long: `init writes the current configuration (defaults, merged with any loaded file
and flags) as YAML. Without a path it goes to the user config directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			var err error
			if len(args) == 1 {
				path = args[0]
				err = a.cfg.SaveTo(path)
			} else {
				path = config.DefaultPath()
				err = a.cfg.Save()
			}
			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pgpicons %s\n", version)
		},
	}
}
