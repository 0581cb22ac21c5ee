//go:build !windows

package host

import "context"

// Only Windows registers SDK versions, so other hosts report none.
func installedSDKVersions(_ context.Context) ([]string, error) {
	return nil, nil
}

// Other hosts have no drive letters; a single empty letter keeps templates usable.
func fixedDrives(_ context.Context) ([]string, error) {
	return []string{""}, nil
}
