package bundle

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/oshokin/msix-store-tool/internal/logger"
	"github.com/oshokin/msix-store-tool/internal/process"
	"github.com/oshokin/msix-store-tool/internal/toolchain"
	"github.com/oshokin/msix-store-tool/internal/workspace"
)

// Status tells how a run ended.
type Status int

const (
	// StatusBundled means the signed bundle was written to the input directory.
	StatusBundled Status = iota
	// StatusNoToolchain means no SDK directory with both tools was found.
	StatusNoToolchain
	// StatusNoPackages means the input directory had no packages to bundle.
	StatusNoPackages
)

func (s Status) String() string {
	switch s {
	case StatusBundled:
		return "bundled"
	case StatusNoToolchain:
		return "no toolchain"
	case StatusNoPackages:
		return "no packages"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes a finished run.
type Result struct {
	// Status tells whether a bundle was produced.
	Status Status
	// BundlePath is the signed bundle inside the input directory.
	BundlePath string
	// Toolchain is the SDK location that was used, nil when none was found.
	Toolchain *toolchain.Toolchain
	// Packages are the input files that went into the bundle.
	Packages []string
}

// toolLocator finds the SDK tools.
type toolLocator interface {
	Locate(ctx context.Context) (*toolchain.Toolchain, error)
}

// bundler carries the collaborators of a single bundle run.
type bundler struct {
	opts             *Options
	packageExtension string
	locator          toolLocator
	runner           process.Runner
	workspace        *workspace.Workspace
}

// Run stages the packages, runs the bundler and the signer and copies the
// bundle back. The scratch directory is removed on every path.
func (b *bundler) Run(ctx context.Context) (*Result, error) {
	b.workspace.Reset(ctx)

	defer b.cleanup(ctx)

	logger.Info(ctx, "Looking for Windows SDK")

	tc, err := b.locator.Locate(ctx)
	if errors.Is(err, toolchain.ErrNotFound) {
		logger.Warn(ctx, "No Windows SDK with the bundler and signer was found")
		return &Result{Status: StatusNoToolchain}, nil
	}

	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "SDK found", "directory", tc.Directory)

	if err = b.workspace.Create(); err != nil {
		return nil, err
	}

	packages, err := workspace.FindPackages(b.opts.InputDirectory, b.packageExtension)
	if err != nil {
		return nil, err
	}

	if len(packages) == 0 {
		logger.InfoKV(ctx, "Nothing to bundle", "directory", b.opts.InputDirectory, "extension", b.packageExtension)
		return &Result{Status: StatusNoPackages, Toolchain: tc}, nil
	}

	logger.InfoKV(ctx, "Staging packages", "count", len(packages), "scratch", b.workspace.Temp)

	if _, err = b.workspace.Stage(ctx, packages); err != nil {
		return nil, err
	}

	bundlePath := b.workspace.BundlePath(b.opts.OutputFilename)

	logger.InfoKV(ctx, "Creating bundle", "path", bundlePath)

	args := bundlerArgs(b.workspace.Temp, bundlePath)
	logger.DebugKV(ctx, "Bundler arguments", "args", args)

	if err = b.exec(ctx, tc.Bundler, args); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Signing bundle", "hash_algorithm", b.opts.HashAlgorithm)

	args = signerArgs(b.opts, bundlePath)
	logger.DebugKV(ctx, "Signer arguments", "args", redactPassword(args))

	if err = b.exec(ctx, tc.Signer, args); err != nil {
		return nil, err
	}

	target := filepath.Join(b.opts.InputDirectory, b.opts.OutputFilename)
	if err = workspace.CopyFile(bundlePath, target); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Bundle is ready", "path", target)

	return &Result{
		Status:     StatusBundled,
		BundlePath: target,
		Toolchain:  tc,
		Packages:   packages,
	}, nil
}

func (b *bundler) exec(ctx context.Context, executable string, args []string) error {
	if _, err := b.runner.Run(ctx, executable, args...); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(executable), err)
	}

	return nil
}

// cleanup removes the scratch directory; failures are only logged.
func (b *bundler) cleanup(ctx context.Context) {
	if err := b.workspace.Cleanup(); err != nil {
		logger.ErrorKV(ctx, "Unable to remove scratch directory", "path", b.workspace.Temp, "error", err)
	}
}

// bundlerArgs builds `bundle /d <source> /p <target> /o`.
// /o keeps the bundler from prompting when target is left over from an earlier run.
func bundlerArgs(sourceDir, target string) []string {
	return []string{"bundle", "/d", sourceDir, "/p", target, "/o"}
}

// signerArgs builds `sign /fd <hash> /a /f <pfx> [/p <password>] [/tr <url> /td <hash>] <file>`.
func signerArgs(opts *Options, file string) []string {
	args := []string{"sign", "/fd", opts.HashAlgorithm, "/a", "/f", opts.CertificateFile}

	if opts.CertificatePassword != "" {
		args = append(args, "/p", opts.CertificatePassword)
	}

	if opts.TimestampURL != "" {
		args = append(args, "/tr", opts.TimestampURL, "/td", opts.HashAlgorithm)
	}

	return append(args, file)
}

// redactPassword masks the value following /p in signer arguments.
func redactPassword(args []string) []string {
	masked := slices.Clone(args)

	for i := 0; i < len(masked)-1; i++ {
		if masked[i] == "/p" {
			masked[i+1] = "***"
		}
	}

	return masked
}
