// Package version holds build metadata injected through -ldflags and the
// `version` subcommand that prints it.
package version
