package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	cp "github.com/otiai10/copy"

	"github.com/oshokin/msix-store-tool/internal/logger"
)

const (
	// ToolName names the private directory under the application data root.
	ToolName = "msix-store-tool"

	// tempDirName is the scratch subdirectory, removed before and after every run.
	tempDirName = "temp"

	// DefaultDirMode is used for the directories the workspace creates.
	DefaultDirMode os.FileMode = 0o755
)

var errNotDirectory = errors.New("not a directory")

// Workspace is the tool's private area: Root receives the built bundle,
// Temp holds the packages handed to the bundler.
type Workspace struct {
	// Root is <app-data>/msix-store-tool.
	Root string
	// Temp is Root/temp.
	Temp string
}

// New returns the workspace under appDataDir, or under the per-user local
// application data directory when appDataDir is empty.
func New(appDataDir string) (*Workspace, error) {
	if appDataDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve application data directory: %w", err)
		}

		appDataDir = dir
	}

	root := filepath.Join(filepath.Clean(appDataDir), ToolName)

	return &Workspace{
		Root: root,
		Temp: filepath.Join(root, tempDirName),
	}, nil
}

// Reset removes a scratch directory left over from a previous run.
// Failures are logged and otherwise ignored.
func (w *Workspace) Reset(ctx context.Context) {
	if err := os.RemoveAll(w.Temp); err != nil {
		logger.WarnKV(ctx, "Unable to remove previous scratch directory", "path", w.Temp, "error", err)
	}
}

// Create makes Root and Temp.
func (w *Workspace) Create() error {
	if err := os.MkdirAll(w.Temp, DefaultDirMode); err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}

	return nil
}

// Cleanup removes Temp and everything in it. Root and the bundle stay.
func (w *Workspace) Cleanup() error {
	if err := os.RemoveAll(w.Temp); err != nil {
		return fmt.Errorf("remove scratch directory: %w", err)
	}

	return nil
}

// BundlePath is where the bundler writes name.
func (w *Workspace) BundlePath(name string) string {
	return filepath.Join(w.Root, name)
}

// Stage copies files into Temp, replacing files of the same name.
// It returns the staged paths in the same order.
func (w *Workspace) Stage(ctx context.Context, files []string) ([]string, error) {
	staged := make([]string, 0, len(files))

	for _, src := range files {
		dst := filepath.Join(w.Temp, filepath.Base(src))

		logger.DebugKV(ctx, "Staging package", "from", src, "to", dst)

		if err := CopyFile(src, dst); err != nil {
			return staged, err
		}

		staged = append(staged, dst)
	}

	return staged, nil
}

// CopyFile copies src to dst, truncating dst if it exists.
func CopyFile(src, dst string) error {
	//nolint:exhaustruct // Zero values keep the library defaults.
	opts := cp.Options{
		Sync:          true,
		PreserveTimes: true,
	}

	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return nil
}

// FindPackages lists regular files directly inside dir whose extension
// equals ext, ignoring case. The result is sorted by name.
func FindPackages(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat input directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, errNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var packages []string

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}

		packages = append(packages, filepath.Join(dir, entry.Name()))
	}

	slices.Sort(packages)

	return packages, nil
}
