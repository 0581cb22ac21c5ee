// Package toolchain finds the directory holding the SDK bundler and signer.
//
// Each configured template is expanded for every installed SDK version
// (newest first) and every fixed drive; the first expansion that is an
// existing directory containing both executables wins.
package toolchain
