package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/msix-store-tool/internal/config"
)

// TestConfigInit writes defaults and refuses to clobber them without --force.
func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.ErrorIs(t, rootCmd.ExecuteContext(context.Background()), config.ErrConfigExists)

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
}

// TestBundleRequiresFourArguments checks argument validation.
func TestBundleRequiresFourArguments(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"bundle", "only-one"})

	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}

// TestUnknownLogLevel rejects a bad --log-level before running anything.
func TestUnknownLogLevel(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"version", "--log-level", "chatty"})

	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}
