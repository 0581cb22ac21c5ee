package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/msix-store-tool/internal/host"
	"github.com/oshokin/msix-store-tool/internal/logger"
)

// ErrNotFound means no configured location holds both executables.
var ErrNotFound = errors.New("toolchain not found")

// Toolchain is a directory known to contain the bundler and the signer.
type Toolchain struct {
	// Directory is the expanded template that matched.
	Directory string
	// Bundler is the full path of the bundler executable.
	Bundler string
	// Signer is the full path of the signer executable.
	Signer string
}

// Locator searches path templates for the SDK executables.
type Locator struct {
	provider  host.Provider
	templates []string
	bundler   string
	signer    string
}

// NewLocator returns a Locator over templates looking for the bundler and signer file names.
func NewLocator(provider host.Provider, templates []string, bundler, signer string) *Locator {
	return &Locator{
		provider:  provider,
		templates: templates,
		bundler:   bundler,
		signer:    signer,
	}
}

// Locate returns the first candidate directory, in template, version, drive
// order, that contains both executables.
func (l *Locator) Locate(ctx context.Context) (*Toolchain, error) {
	platform, err := l.provider.Platform(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}

	drives, err := l.provider.FixedDrives(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixed drives: %w", err)
	}

	versions, err := l.provider.InstalledSDKVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list installed sdk versions: %w", err)
	}

	if len(versions) == 0 {
		logger.Warn(ctx, "No installed SDK versions found")
		return nil, ErrNotFound
	}

	// Providers may not sort; newest first is part of the search order.
	versions = host.SortVersionsDescending(versions)

	logger.DebugKV(ctx, "Searching for SDK tools",
		"platform", platform, "drives", drives, "versions", versions)

	for _, template := range l.templates {
		for _, version := range versions {
			for _, drive := range drives {
				candidate := Expand(template, map[string]string{
					PlaceholderDrive:      drive,
					PlaceholderSDKVersion: version,
					PlaceholderPlatform:   platform,
				})

				if tc, ok := l.probe(candidate); ok {
					return tc, nil
				}
			}
		}
	}

	return nil, ErrNotFound
}

// probe reports whether dir exists and holds both executables.
func (l *Locator) probe(dir string) (*Toolchain, bool) {
	if !isDir(dir) {
		return nil, false
	}

	tc := &Toolchain{
		Directory: dir,
		Bundler:   filepath.Join(dir, l.bundler),
		Signer:    filepath.Join(dir, l.signer),
	}

	if !isFile(tc.Bundler) || !isFile(tc.Signer) {
		return nil, false
	}

	return tc, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
