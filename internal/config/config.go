// Package config loads the optional YAML settings of the preprocessor CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/mdbook-pagebreaks/internal/fileutil"
	"github.com/alnah/mdbook-pagebreaks/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name used under the user config directory.
const AppDir = "mdbook-pagebreaks"

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxFileNameLength = 255  // NAME_MAX on most filesystems
	MaxStyleLength    = 64   // matches assets.MaxAssetNameLength
	MaxLevelLength    = 16
)

// Defaults applied by DefaultConfig.
const (
	DefaultFileName = "mdbook-pagebreaks.css"
	DefaultStyle    = "pagebreaks"
	DefaultLogLevel = "info"
)

// LogLevels lists the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error", "disabled"}

// Config holds the CLI settings.
type Config struct {
	Init   InitConfig   `yaml:"init"`
	Log    LogConfig    `yaml:"log"`
	Assets AssetsConfig `yaml:"assets"`
}

// InitConfig controls where the init command writes the stylesheet.
type InitConfig struct {
	OutputDir string `yaml:"outputDir"` // Empty = current directory
	FileName  string `yaml:"fileName"`
	Style     string `yaml:"style"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Init: InitConfig{FileName: DefaultFileName, Style: DefaultStyle},
		Log:  LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks field lengths and enumerated values.
// Empty fields are valid and mean "use the default".
func (c *Config) Validate() error {
	if err := validateFieldLength("init.outputDir", c.Init.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("init.fileName", c.Init.FileName, MaxFileNameLength); err != nil {
		return err
	}
	if c.Init.FileName != "" {
		if fileutil.IsFilePath(c.Init.FileName) || strings.ContainsRune(c.Init.FileName, 0) {
			return fmt.Errorf("%w: init.fileName %q must be a bare file name", ErrInvalidValue, c.Init.FileName)
		}
		if !strings.HasSuffix(c.Init.FileName, ".css") {
			return fmt.Errorf("%w: init.fileName %q must end in .css", ErrInvalidValue, c.Init.FileName)
		}
	}
	if err := validateFieldLength("init.style", c.Init.Style, MaxStyleLength); err != nil {
		return err
	}

	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" && !IsLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (must be one of %s)",
			ErrInvalidValue, c.Log.Level, strings.Join(LogLevels, ", "))
	}

	return validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength)
}

// IsLogLevel reports whether s names an accepted log level, ignoring case.
func IsLogLevel(s string) bool {
	s = strings.ToLower(s)
	for _, l := range LogLevels {
		if s == l {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a file. Anything else is
// looked up by name in SearchedPaths order. Missing files are an error.
// Fields left empty in the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Init.FileName == "" {
		c.Init.FileName = d.Init.FileName
	}
	if c.Init.Style == "" {
		c.Init.Style = d.Init.Style
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// SearchedPaths returns the candidate files for a config name, in lookup order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchedPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchedPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
