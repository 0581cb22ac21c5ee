package host

import (
	"context"
	"fmt"
	"slices"
	"strings"

	pshost "github.com/shirou/gopsutil/v3/host"
)

const (
	// PlatformX64 is the SDK bin subdirectory for 64-bit hosts.
	PlatformX64 = "x64"
	// PlatformX86 is the SDK bin subdirectory for 32-bit hosts.
	PlatformX86 = "x86"
)

// Provider exposes the host facts the toolchain search depends on.
type Provider interface {
	// InstalledSDKVersions returns the installed developer-kit versions, newest first.
	// A host without any kit yields an empty slice and no error.
	InstalledSDKVersions(ctx context.Context) ([]string, error)
	// FixedDrives returns the letters of fixed local drives, without the colon.
	FixedDrives(ctx context.Context) ([]string, error)
	// Platform returns PlatformX64 or PlatformX86.
	Platform(ctx context.Context) (string, error)
}

// System is the Provider backed by the running operating system.
type System struct{}

// NewSystem returns the Provider for the current host.
func NewSystem() *System {
	return &System{}
}

// InstalledSDKVersions lists the SDK versions registered on this host, newest first.
func (*System) InstalledSDKVersions(ctx context.Context) ([]string, error) {
	versions, err := installedSDKVersions(ctx)
	if err != nil {
		return nil, err
	}

	return SortVersionsDescending(versions), nil
}

// FixedDrives lists the fixed drive letters of this host.
func (*System) FixedDrives(ctx context.Context) ([]string, error) {
	return fixedDrives(ctx)
}

// Platform maps the native kernel architecture onto an SDK platform token.
func (*System) Platform(_ context.Context) (string, error) {
	arch, err := pshost.KernelArch()
	if err != nil {
		return "", fmt.Errorf("detect kernel architecture: %w", err)
	}

	return PlatformFromArch(arch), nil
}

// PlatformFromArch converts an architecture name such as "x86_64" or "i686"
// into PlatformX64 or PlatformX86.
func PlatformFromArch(arch string) string {
	arch = strings.ToLower(strings.TrimSpace(arch))

	if strings.Contains(arch, "64") {
		return PlatformX64
	}

	return PlatformX86
}

// SortVersionsDescending returns a copy of versions in descending lexicographic order.
func SortVersionsDescending(versions []string) []string {
	sorted := slices.Clone(versions)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	return sorted
}
