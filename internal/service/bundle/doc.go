// Package bundle combines the platform packages of a directory into one
// signed bundle.
//
// Run locates the SDK tools, copies the packages into the scratch directory,
// runs the bundler and then the signer, and copies the signed bundle back
// into the input directory. The scratch directory is removed before and
// after every run, whatever the outcome.
package bundle
