//go:build windows

package host

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// installedRootsKey lists one subkey per installed Windows SDK version.
const installedRootsKey = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`

const driveLetters = 26

func installedSDKVersions(_ context.Context) ([]string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, installedRootsKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("open registry key %s: %w", installedRootsKey, err)
	}

	defer func() {
		_ = key.Close()
	}()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("read subkeys of %s: %w", installedRootsKey, err)
	}

	return names, nil
}

func fixedDrives(_ context.Context) ([]string, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("get logical drives: %w", err)
	}

	drives := make([]string, 0, driveLetters)

	for i := range driveLetters {
		if mask&(1<<uint(i)) == 0 {
			continue
		}

		letter := string(rune('A' + i))

		root, err := windows.UTF16PtrFromString(letter + `:\`)
		if err != nil {
			return nil, err
		}

		if windows.GetDriveType(root) != windows.DRIVE_FIXED {
			continue
		}

		drives = append(drives, letter)
	}

	return drives, nil
}
