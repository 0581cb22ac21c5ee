package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultBundleExtension is appended to an output name given without an extension.
const DefaultBundleExtension = ".msixbundle"

// Options contains inputs for the bundle entry point.
type Options struct {
	// InputDirectory holds the platform packages; the signed bundle is written back here.
	InputDirectory string
	// OutputFilename is the bundle file name, without a directory.
	OutputFilename string
	// CertificateFile is the PFX used for signing.
	CertificateFile string
	// HashAlgorithm is the file digest algorithm passed to the signer, e.g. SHA256.
	HashAlgorithm string
	// CertificatePassword unlocks CertificateFile when it is protected.
	CertificatePassword string
	// TimestampURL is an optional RFC 3161 timestamp server.
	TimestampURL string
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
}

var (
	errNoInputDirectory  = errors.New("input directory must be provided")
	errInputNotDirectory = errors.New("input path is not a directory")
	errNoOutputFilename  = errors.New("output filename must be provided")
	errOutputHasPath     = errors.New("output filename must not contain a directory")
	errNoCertificate     = errors.New("certificate file must be provided")
	errCertificateIsDir  = errors.New("certificate path is a directory")
	errUnsupportedHash   = errors.New("unsupported hash algorithm")
)

// supportedHashAlgorithms are the /fd values accepted by the signer.
//
//nolint:gochecknoglobals // Read-only lookup table.
var supportedHashAlgorithms = []string{"SHA1", "SHA256", "SHA384", "SHA512"}

// Validate checks the options and normalizes the output name and hash algorithm.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.InputDirectory) == "" {
		return errNoInputDirectory
	}

	info, err := os.Stat(o.InputDirectory)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", o.InputDirectory, errInputNotDirectory)
	}

	if err = o.normalizeOutputFilename(); err != nil {
		return err
	}

	if strings.TrimSpace(o.CertificateFile) == "" {
		return errNoCertificate
	}

	info, err = os.Stat(o.CertificateFile)
	if err != nil {
		return fmt.Errorf("certificate file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s: %w", o.CertificateFile, errCertificateIsDir)
	}

	hash := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(o.HashAlgorithm), "-", ""))
	if !slices.Contains(supportedHashAlgorithms, hash) {
		return fmt.Errorf("%q (expected one of %s): %w",
			o.HashAlgorithm, strings.Join(supportedHashAlgorithms, ", "), errUnsupportedHash)
	}

	o.HashAlgorithm = hash

	return nil
}

func (o *Options) normalizeOutputFilename() error {
	name := strings.TrimSpace(o.OutputFilename)
	if name == "" || name == "." || name == ".." {
		return errNoOutputFilename
	}

	if strings.ContainsAny(name, `/\:`) {
		return fmt.Errorf("%q: %w", name, errOutputHasPath)
	}

	if filepath.Ext(name) == "" {
		name += DefaultBundleExtension
	}

	o.OutputFilename = name

	return nil
}
