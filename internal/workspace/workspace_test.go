package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirMode))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

// TestNewLayout checks the Root and Temp paths.
func TestNewLayout(t *testing.T) {
	t.Parallel()

	appData := t.TempDir()

	ws, err := New(appData)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(appData, ToolName), ws.Root)
	require.Equal(t, filepath.Join(appData, ToolName, "temp"), ws.Temp)
	require.Equal(t, filepath.Join(appData, ToolName, "app.msixbundle"), ws.BundlePath("app.msixbundle"))
}

// TestLifecycle covers Reset, Create, Stage and Cleanup.
func TestLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ws, err := New(t.TempDir())
	require.NoError(t, err)

	// Leftovers from an earlier run disappear on Reset.
	writeFile(t, filepath.Join(ws.Temp, "stale.msix"), "old")
	ws.Reset(ctx)
	require.NoDirExists(t, ws.Temp)

	require.NoError(t, ws.Create())
	require.DirExists(t, ws.Temp)

	src := t.TempDir()
	a := filepath.Join(src, "App_x64.msix")
	writeFile(t, a, "x64")

	// An existing staged file is overwritten.
	writeFile(t, filepath.Join(ws.Temp, "App_x64.msix"), "previous contents")

	staged, err := ws.Stage(ctx, []string{a})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(ws.Temp, "App_x64.msix")}, staged)

	data, err := os.ReadFile(staged[0])
	require.NoError(t, err)
	require.Equal(t, "x64", string(data))

	writeFile(t, ws.BundlePath("App.msixbundle"), "bundle")

	require.NoError(t, ws.Cleanup())
	require.NoDirExists(t, ws.Temp)
	require.FileExists(t, ws.BundlePath("App.msixbundle"))

	// Cleaning an absent directory is fine.
	require.NoError(t, ws.Cleanup())
}

// TestStageMissingSource reports the failing copy.
func TestStageMissingSource(t *testing.T) {
	t.Parallel()

	ws, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, ws.Create())

	_, err = ws.Stage(context.Background(), []string{filepath.Join(t.TempDir(), "missing.msix")})
	require.Error(t, err)
}

// TestFindPackages matches the extension case-insensitively and skips bundles and directories.
func TestFindPackages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b_x86.msix"), "")
	writeFile(t, filepath.Join(dir, "a_arm64.MSIX"), "")
	writeFile(t, filepath.Join(dir, "App.msixbundle"), "")
	writeFile(t, filepath.Join(dir, "readme.txt"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.msix"), DefaultDirMode))

	found, err := FindPackages(dir, ".msix")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a_arm64.MSIX"),
		filepath.Join(dir, "b_x86.msix"),
	}, found)
}

// TestFindPackagesEmptyAndMissing covers the empty and absent directory cases.
func TestFindPackagesEmptyAndMissing(t *testing.T) {
	t.Parallel()

	found, err := FindPackages(t.TempDir(), ".msix")
	require.NoError(t, err)
	require.Empty(t, found)

	_, err = FindPackages(filepath.Join(t.TempDir(), "absent"), ".msix")
	require.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "file.msix")
	writeFile(t, file, "")

	_, err = FindPackages(file, ".msix")
	require.ErrorIs(t, err, errNotDirectory)
}
