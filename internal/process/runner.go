package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/oshokin/msix-store-tool/internal/logger"
)

// ExitError reports an external tool that finished with a non-zero exit code.
type ExitError struct {
	// Executable is the path that was run.
	Executable string
	// Code is the exit code reported by the operating system.
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", filepath.Base(e.Executable), e.Code)
}

// Runner starts an external executable and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, executable string, args ...string) (int, error)
}

// ExecRunner runs executables through os/exec, forwarding their output.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// Option customizes an ExecRunner.
type Option func(*ExecRunner)

// WithOutput redirects the child's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *ExecRunner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewExecRunner returns a Runner that writes child output to the process stdout and stderr.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run blocks until executable exits. A non-zero exit code is returned both
// as the int result and as an *ExitError.
func (r *ExecRunner) Run(ctx context.Context, executable string, args ...string) (int, error) {
	logger.DebugKV(ctx, "Running external tool", "executable", executable)

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), &ExitError{Executable: executable, Code: exitErr.ExitCode()}
	}

	return -1, fmt.Errorf("run %s: %w", filepath.Base(executable), err)
}
