package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/msix-store-tool/internal/config"
	"github.com/oshokin/msix-store-tool/internal/logger"
)

// newConfigCmd returns `config` with its `init` subcommand.
func newConfigCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultConfigFilename
			}

			if err := config.Save(path, config.Default(), force); err != nil {
				return err
			}

			logger.InfoKV(cmd.Context(), "Settings written", "path", path)

			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing settings file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	configCmd.AddCommand(initCmd)

	return configCmd
}
