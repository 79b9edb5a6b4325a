package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"flist/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"-"`

	// Scan settings
	BaseDir            string   `yaml:"base_dir"`
	Includes           []string `yaml:"includes"`
	Excludes           []string `yaml:"excludes"`
	CaseSensitive      bool     `yaml:"case_sensitive"`
	IncludeSlashPrefix bool     `yaml:"include_slash_prefix"`

	// Output settings
	OutputFile   string `yaml:"output_file"`
	Type         string `yaml:"type"`
	SuitePackage string `yaml:"suite_package"`
	SuiteClass   string `yaml:"suite_class"`

	// Console settings
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"-"`
}

// Flags holds command-line overrides. A nil field was not set on the
// command line and leaves the configured value alone.
type Flags struct {
	BaseDir            *string
	OutputFile         *string
	Includes           *[]string
	Excludes           *[]string
	Type               *string
	CaseSensitive      *bool
	IncludeSlashPrefix *bool
	SuitePackage       *string
	SuiteClass         *string
	LogLevel           *string
	Quiet              *bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:  DefaultProjectPath,
		BaseDir:      DefaultBaseDir,
		OutputFile:   DefaultOutputFile,
		Type:         DefaultType,
		SuitePackage: DefaultSuitePackage,
		SuiteClass:   DefaultSuiteClass,
		LogLevel:     DefaultLogLevel,
	}
}

// MergeWithFlags applies every flag that was set
func (c *Config) MergeWithFlags(f Flags) {
	if f.BaseDir != nil {
		c.BaseDir = *f.BaseDir
	}
	if f.OutputFile != nil {
		c.OutputFile = *f.OutputFile
	}
	if f.Includes != nil {
		c.Includes = append([]string(nil), *f.Includes...)
	}
	if f.Excludes != nil {
		c.Excludes = append([]string(nil), *f.Excludes...)
	}
	if f.Type != nil {
		c.Type = *f.Type
	}
	if f.CaseSensitive != nil {
		c.CaseSensitive = *f.CaseSensitive
	}
	if f.IncludeSlashPrefix != nil {
		c.IncludeSlashPrefix = *f.IncludeSlashPrefix
	}
	if f.SuitePackage != nil {
		c.SuitePackage = *f.SuitePackage
	}
	if f.SuiteClass != nil {
		c.SuiteClass = *f.SuiteClass
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Quiet != nil {
		c.Quiet = *f.Quiet
	}
}

// Validate checks the values every command depends on. The output type
// is resolved by Format when something is rendered.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return &domain.ConfigurationError{Field: "output file", Err: fmt.Errorf("must not be empty")}
	}
	if !validLogLevels[strings.ToLower(strings.TrimSpace(c.LogLevel))] {
		return &domain.ConfigurationError{
			Field: "log level",
			Err:   fmt.Errorf("%q is not one of trace, debug, info, warn, error", c.LogLevel),
		}
	}
	return nil
}

// GetBaseDir returns the scan root, relative paths resolved against the
// project path
func (c *Config) GetBaseDir() string {
	return c.resolve(c.BaseDir)
}

// GetOutputPath returns the output file path, relative paths resolved
// against the project path
func (c *Config) GetOutputPath() string {
	return c.resolve(c.OutputFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.ProjectPath == "" {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}

// ScanRequest builds the immutable scan request for this configuration
func (c *Config) ScanRequest() domain.ScanRequest {
	return domain.ScanRequest{
		BaseDir:         c.GetBaseDir(),
		Includes:        append([]string(nil), c.Includes...),
		Excludes:        append([]string(nil), c.Excludes...),
		CaseSensitive:   c.CaseSensitive,
		PrefixWithSlash: c.IncludeSlashPrefix,
	}
}

// Format resolves the configured output type
func (c *Config) Format() (domain.Format, error) {
	return domain.ParseFormat(c.Type)
}

// Suite returns the JUnit suite naming
func (c *Config) Suite() domain.Suite {
	return domain.Suite{Package: c.SuitePackage, Class: c.SuiteClass}
}
