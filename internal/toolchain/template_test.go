package toolchain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExpand checks substitution and that unknown placeholders survive.
func TestExpand(t *testing.T) {
	t.Parallel()

	params := map[string]string{
		PlaceholderDrive:      "C",
		PlaceholderSDKVersion: "10.0.19041.0",
		PlaceholderPlatform:   "x64",
	}

	require.Equal(t, `C:\SDK\10.0.19041.0\x64\`, Expand(`{drive}:\SDK\{sdk-version}\{platform}\`, params))
	require.Equal(t, `C:\{arch}\x64`, Expand(`{drive}:\{arch}\{platform}`, params))
	require.Equal(t, `C:\C\`, Expand(`{drive}:\{drive}\`, params))
	require.Equal(t, `{drive}`, Expand(`{drive}`, nil))
}

// TestExpandIsSinglePass ensures substituted values are not expanded again.
func TestExpandIsSinglePass(t *testing.T) {
	t.Parallel()

	got := Expand("{drive}/{platform}", map[string]string{
		PlaceholderDrive:    "{platform}",
		PlaceholderPlatform: "x86",
	})
	require.Equal(t, "{platform}/x86", got)
}
