package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/msix-store-tool/internal/config"
	"github.com/oshokin/msix-store-tool/internal/workspace"
)

// TestRunWithoutSDK runs the public entry point on a host whose templates match nothing.
func TestRunWithoutSDK(t *testing.T) {
	t.Parallel()

	appData := t.TempDir()
	cfg := config.Default()
	cfg.SDKToolsDirectories = []string{filepath.Join(t.TempDir(), "{drive}", "{sdk-version}", "{platform}")}
	cfg.AppDataDirectory = appData

	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(configPath, cfg, false))

	opts := validOptions(t)
	opts.ConfigPath = configPath
	require.NoError(t, os.WriteFile(filepath.Join(opts.InputDirectory, "App_x64.msix"), nil, 0o600))

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, StatusNoToolchain, result.Status)
	require.NoDirExists(t, filepath.Join(appData, workspace.ToolName, "temp"))
	require.NoFileExists(t, filepath.Join(opts.InputDirectory, opts.OutputFilename))
}

// TestRunInvalidOptions ensures validation happens before anything touches the disk.
func TestRunInvalidOptions(t *testing.T) {
	t.Parallel()

	opts := validOptions(t)
	opts.HashAlgorithm = "CRC32"

	_, err := Run(context.Background(), opts)
	require.ErrorIs(t, err, errUnsupportedHash)
}

// TestRunMissingConfig surfaces an explicit config path that does not exist.
func TestRunMissingConfig(t *testing.T) {
	t.Parallel()

	opts := validOptions(t)
	opts.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Run(context.Background(), opts)
	require.ErrorIs(t, err, os.ErrNotExist)
}
