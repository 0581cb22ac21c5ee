package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/msix-store-tool/internal/service/bundle"
)

var (
	// certificatePassword unlocks a protected PFX file.
	certificatePassword string
	// timestampURL is the optional RFC 3161 timestamp server.
	timestampURL string

	// bundleCmd builds and signs a bundle from a directory of packages.
	bundleCmd = &cobra.Command{
		Use:   "bundle <msix-directory> <output-file> <pfx-file> <hash-algorithm>",
		Short: "Bundle all .msix files of a directory and sign the result",
		Long: `Copies every .msix file of <msix-directory> into a scratch directory, runs
makeappx to produce <output-file>, signs it with signtool using <pfx-file> and
<hash-algorithm> (SHA1, SHA256, SHA384 or SHA512), and copies the signed bundle
back into <msix-directory>.`,
		Example: `  msix-store-tool bundle .\AppPackages\App_2.1.47.0_Test App_2.1.47.0_x86_x64_arm64.msixbundle .\App_TemporaryKey.pfx SHA256`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &bundle.Options{
				InputDirectory:      args[0],
				OutputFilename:      args[1],
				CertificateFile:     args[2],
				HashAlgorithm:       args[3],
				CertificatePassword: certificatePassword,
				TimestampURL:        timestampURL,
				ConfigPath:          configPath,
			}

			_, err := bundle.Run(cmd.Context(), options)

			return err
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	bundleCmd.Flags().StringVarP(&certificatePassword, "password", "p", "", "password of the PFX file")
	bundleCmd.Flags().StringVarP(&timestampURL, "timestamp-url", "t", "", "RFC 3161 timestamp server URL")
}
