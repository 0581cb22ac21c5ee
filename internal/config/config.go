package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/msix-store-tool/internal/logger"
)

// Config holds the toolchain search and workspace settings.
type Config struct {
	// SDKToolsDirectories are path templates searched for the SDK executables.
	// Recognized placeholders are {drive}, {sdk-version} and {platform}.
	SDKToolsDirectories []string `yaml:"sdk_tools_directories"`
	// PackageExtension selects the input files to bundle.
	PackageExtension string `yaml:"package_extension"`
	// BundlerExecutable is the file name of the bundler inside the SDK directory.
	BundlerExecutable string `yaml:"bundler_executable"`
	// SignerExecutable is the file name of the signer inside the SDK directory.
	SignerExecutable string `yaml:"signer_executable"`
	// AppDataDirectory overrides the per-user application data root.
	AppDataDirectory string `yaml:"app_data_directory,omitempty"`
	// LogLevel is the default log level when no flag is given.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is looked up in the working directory when no path is given.
	DefaultConfigFilename = "msix-store-tool-settings.yaml"

	// DefaultPackageExtension is the extension of platform packages.
	DefaultPackageExtension = ".msix"

	// DefaultBundlerExecutable is the SDK bundler.
	DefaultBundlerExecutable = "makeappx.exe"

	// DefaultSignerExecutable is the SDK signer.
	DefaultSignerExecutable = "signtool.exe"

	// DefaultLogLevel is used when the config leaves log_level empty.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is used for the written config file.
	DefaultFilePermissions = 0o600
)

var (
	// ErrConfigIsNotSet is returned when a nil configuration is provided.
	ErrConfigIsNotSet = errors.New("configuration is not set")
	// ErrConfigExists is returned by Save when the file exists and overwrite is off.
	ErrConfigExists = errors.New("configuration file already exists")

	errNoTemplates       = errors.New("at least one sdk tools directory must be configured")
	errEmptyTemplate     = errors.New("sdk tools directory must not be empty")
	errNoBundler         = errors.New("bundler executable must be provided")
	errNoSigner          = errors.New("signer executable must be provided")
	errBadExtension      = errors.New("package extension must start with a dot")
	errUnknownLogLevel   = errors.New("unknown log level")
	errExecutableHasPath = errors.New("executable must be a bare file name")
)

// DefaultSDKToolsDirectories returns the standard Windows 10/11 SDK bin locations.
func DefaultSDKToolsDirectories() []string {
	return []string{
		`{drive}:\Program Files (x86)\Windows Kits\10\bin\{sdk-version}\{platform}\`,
		`{drive}:\Program Files\Windows Kits\10\bin\{sdk-version}\{platform}\`,
	}
}

// Default returns a configuration suitable for a stock SDK installation.
func Default() *Config {
	return &Config{
		SDKToolsDirectories: DefaultSDKToolsDirectories(),
		PackageExtension:    DefaultPackageExtension,
		BundlerExecutable:   DefaultBundlerExecutable,
		SignerExecutable:    DefaultSignerExecutable,
		LogLevel:            DefaultLogLevel,
	}
}

// Load reads configuration from path.
// An empty path means DefaultConfigFilename, and if that file is absent
// the defaults are returned. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := new(Config)
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path. An existing file is only replaced when overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if cfg == nil {
		return ErrConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills in defaults for optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigIsNotSet
	}

	if len(cfg.SDKToolsDirectories) == 0 {
		return errNoTemplates
	}

	for _, template := range cfg.SDKToolsDirectories {
		if strings.TrimSpace(template) == "" {
			return errEmptyTemplate
		}
	}

	if cfg.PackageExtension == "" {
		cfg.PackageExtension = DefaultPackageExtension
	}

	if !strings.HasPrefix(cfg.PackageExtension, ".") {
		return fmt.Errorf("%q: %w", cfg.PackageExtension, errBadExtension)
	}

	if err := validateExecutable(cfg.BundlerExecutable, errNoBundler); err != nil {
		return err
	}

	if err := validateExecutable(cfg.SignerExecutable, errNoSigner); err != nil {
		return err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%q: %w", cfg.LogLevel, errUnknownLogLevel)
	}

	return nil
}

func validateExecutable(name string, missing error) error {
	if strings.TrimSpace(name) == "" {
		return missing
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, errExecutableHasPath)
	}

	return nil
}
