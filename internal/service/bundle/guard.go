package bundle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/msix-store-tool/internal/logger"
)

// linuxCommLength is how many bytes of an executable name /proc exposes.
const linuxCommLength = 15

// errAlreadyRunning indicates another instance would share the scratch directory.
var errAlreadyRunning = errors.New("another msix-store-tool instance is running")

// ensureSingleInstance fails when another process runs the same executable.
// Lookup failures are logged and do not block the run.
func ensureSingleInstance(ctx context.Context) error {
	self, err := os.Executable()
	if err != nil {
		logger.DebugKV(ctx, "Unable to resolve own executable", "error", err)
		return nil
	}

	processes, err := ps.Processes()
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)
		return nil
	}

	if pid, found := findOtherInstance(processes, filepath.Base(self), os.Getpid()); found {
		logger.WarnKV(ctx, "Another instance holds the scratch directory", "pid", pid)
		return errAlreadyRunning
	}

	return nil
}

// findOtherInstance returns the pid of a process other than selfPID running name.
func findOtherInstance(processes []ps.Process, name string, selfPID int) (int, bool) {
	for _, process := range processes {
		if process.Pid() == selfPID {
			continue
		}

		if sameExecutable(process.Executable(), name) {
			return process.Pid(), true
		}
	}

	return 0, false
}

// sameExecutable compares names, allowing for the truncated names Linux reports.
func sameExecutable(reported, name string) bool {
	if strings.EqualFold(reported, name) {
		return true
	}

	return len(reported) == linuxCommLength && strings.HasPrefix(name, reported)
}
