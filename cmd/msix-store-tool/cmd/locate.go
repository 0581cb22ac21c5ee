package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/msix-store-tool/internal/service/locate"
)

// locateCmd prints the SDK directory the bundle command would use.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the Windows SDK directory holding the bundler and signer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tc, err := locate.Run(cmd.Context(), &locate.Options{ConfigPath: configPath})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tc.Directory)

		return nil
	},
}
