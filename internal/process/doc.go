// Package process runs the external SDK tools.
//
// Runner is the seam the bundle service depends on; ExecRunner is the
// os/exec implementation. A tool that exits non-zero is reported as an
// *ExitError rather than treated as success.
package process
