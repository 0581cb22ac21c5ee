package bundle

import (
	"testing"

	"github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/require"
)

// fakeProcess implements ps.Process.
type fakeProcess struct {
	pid  int
	name string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.name }

// TestFindOtherInstance checks self-exclusion, case folding and truncated names.
func TestFindOtherInstance(t *testing.T) {
	t.Parallel()

	processes := []ps.Process{
		fakeProcess{pid: 10, name: "msix-store-tool.exe"},
		fakeProcess{pid: 20, name: "explorer.exe"},
	}

	_, found := findOtherInstance(processes, "msix-store-tool.exe", 10)
	require.False(t, found)

	pid, found := findOtherInstance(processes, "MSIX-STORE-TOOL.EXE", 30)
	require.True(t, found)
	require.Equal(t, 10, pid)

	// Linux reports at most fifteen bytes of the name.
	truncated := []ps.Process{fakeProcess{pid: 40, name: "msix-store-tool"}}
	pid, found = findOtherInstance(truncated, "msix-store-tool-dev", 30)
	require.True(t, found)
	require.Equal(t, 40, pid)

	_, found = findOtherInstance([]ps.Process{fakeProcess{pid: 50, name: "msix"}}, "msix-store-tool", 30)
	require.False(t, found)
}
