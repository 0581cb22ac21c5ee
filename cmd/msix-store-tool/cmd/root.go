package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/msix-store-tool/internal/config"
	"github.com/oshokin/msix-store-tool/internal/logger"
	"github.com/oshokin/msix-store-tool/internal/version"
)

var (
	// configPath to the configuration YAML file; empty means the default file if present.
	configPath string
	// logLevel overrides the level from the configuration file.
	logLevel string

	// rootCmd is the base command; the work happens in its subcommands.
	rootCmd = &cobra.Command{
		Use:   "msix-store-tool",
		Short: "Bundle and sign MSIX packages with the Windows SDK tools",
		Long: `msix-store-tool combines the .msix packages of a directory into one .msixbundle,
signs it with a PFX certificate and puts the result back into that directory.

The SDK bundler and signer are found by expanding the path templates from the
settings file with every fixed drive, every installed Windows SDK version and
the host platform.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: applyLogLevel,
	}
)

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	defer logger.Sync()

	// Cancelling on a signal also kills a running bundler or signer.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		logger.Error(ctx, err)
		logger.Sync()
		os.Exit(1)
	}
}

// applyLogLevel sets the log level from --log-level, falling back to the settings file.
func applyLogLevel(cmd *cobra.Command, _ []string) error {
	level := logLevel

	if !cmd.Flags().Changed("log-level") {
		// An unreadable settings file is reported later by the command that needs it.
		if cfg, err := config.Load(configPath); err == nil {
			level = cfg.LogLevel
		}
	}

	parsed, ok := logger.ParseLogLevel(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	logger.SetLevel(parsed)

	return nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", config.DefaultLogLevel,
		"log level: debug, info, warn or error")

	rootCmd.AddCommand(bundleCmd, locateCmd, newConfigCmd(), version.NewCommand())
}
