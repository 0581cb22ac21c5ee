// Package logger wraps zap for the CLI.
//
// It keeps one global sugared console logger whose level can be switched at
// runtime, and context helpers (ToContext, FromContext, WithName, WithKV) so
// every service logs through the logger carried by its context.
package logger
