package bundle

import (
	"context"
	"fmt"

	"github.com/oshokin/msix-store-tool/internal/config"
	"github.com/oshokin/msix-store-tool/internal/host"
	"github.com/oshokin/msix-store-tool/internal/logger"
	"github.com/oshokin/msix-store-tool/internal/process"
	"github.com/oshokin/msix-store-tool/internal/toolchain"
	"github.com/oshokin/msix-store-tool/internal/workspace"
)

// Run validates opts, builds the bundle and signs it.
// Missing SDK tools and an input directory without packages are reported
// through Result.Status, not as errors.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	ctx = logger.WithName(ctx, "bundle")

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if err = ensureSingleInstance(ctx); err != nil {
		return nil, err
	}

	ws, err := workspace.New(cfg.AppDataDirectory)
	if err != nil {
		return nil, err
	}

	b := &bundler{
		opts:             opts,
		packageExtension: cfg.PackageExtension,
		locator: toolchain.NewLocator(
			host.NewSystem(),
			cfg.SDKToolsDirectories,
			cfg.BundlerExecutable,
			cfg.SignerExecutable,
		),
		runner:    process.NewExecRunner(),
		workspace: ws,
	}

	result, err := b.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("bundle failed: %w", err)
	}

	return result, nil
}
