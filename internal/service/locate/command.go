package locate

import (
	"context"
	"errors"

	"github.com/oshokin/msix-store-tool/internal/config"
	"github.com/oshokin/msix-store-tool/internal/host"
	"github.com/oshokin/msix-store-tool/internal/logger"
	"github.com/oshokin/msix-store-tool/internal/toolchain"
)

// Options contains inputs for the locate entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
}

// Run searches for the SDK tools the bundle command would use.
// It returns toolchain.ErrNotFound when none of the templates match.
func Run(ctx context.Context, opts *Options) (*toolchain.Toolchain, error) {
	return run(ctx, opts, host.NewSystem())
}

func run(ctx context.Context, opts *Options, provider host.Provider) (*toolchain.Toolchain, error) {
	ctx = logger.WithName(ctx, "locate")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	locator := toolchain.NewLocator(provider, cfg.SDKToolsDirectories, cfg.BundlerExecutable, cfg.SignerExecutable)

	tc, err := locator.Locate(ctx)
	if errors.Is(err, toolchain.ErrNotFound) {
		logger.WarnKV(ctx, "No SDK directory contains both tools",
			"templates", cfg.SDKToolsDirectories,
			"bundler", cfg.BundlerExecutable,
			"signer", cfg.SignerExecutable)

		return nil, err
	}

	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "SDK found", "directory", tc.Directory)

	return tc, nil
}
