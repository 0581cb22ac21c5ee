// Package config defines the tool settings and the helpers to load,
// validate and save them in YAML format.
//
// The settings list the path templates used to find the SDK executables,
// the executable names, the package extension and the log level. A missing
// default settings file is not an error: Default is used instead.
package config
