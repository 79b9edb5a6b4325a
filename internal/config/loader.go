package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"flist/internal/domain"
)

// Load builds a Config from defaults, then the YAML config file, then the
// .env file and process environment. Empty paths fall back to
// DefaultConfigFile and DefaultEnvFile under projectPath, which are skipped
// when missing; explicit paths must exist.
func Load(projectPath, configFile, envFile string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	path, required := configFile, true
	if path == "" {
		path, required = filepath.Join(cfg.ProjectPath, DefaultConfigFile), false
	}
	if err := cfg.LoadFile(path); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	path, required = envFile, true
	if path == "" {
		path, required = filepath.Join(cfg.ProjectPath, DefaultEnvFile), false
	}
	if err := cfg.LoadEnv(path); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// No .env file, the process environment still applies
		if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// yamlConfig uses pointers so that keys present in the file can be told
// apart from zero values
type yamlConfig struct {
	BaseDir            *string  `yaml:"base_dir"`
	OutputFile         *string  `yaml:"output_file"`
	Includes           []string `yaml:"includes"`
	Excludes           []string `yaml:"excludes"`
	Type               *string  `yaml:"type"`
	CaseSensitive      *bool    `yaml:"case_sensitive"`
	IncludeSlashPrefix *bool    `yaml:"include_slash_prefix"`
	SuitePackage       *string  `yaml:"suite_package"`
	SuiteClass         *string  `yaml:"suite_class"`
	LogLevel           *string  `yaml:"log_level"`
}

// LoadFile merges the values present in a YAML config file into c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return &domain.ConfigurationError{Field: "config file " + path, Err: err}
	}

	if yc.BaseDir != nil {
		c.BaseDir = *yc.BaseDir
	}
	if yc.OutputFile != nil {
		c.OutputFile = *yc.OutputFile
	}
	if yc.Includes != nil {
		c.Includes = yc.Includes
	}
	if yc.Excludes != nil {
		c.Excludes = yc.Excludes
	}
	if yc.Type != nil {
		c.Type = *yc.Type
	}
	if yc.CaseSensitive != nil {
		c.CaseSensitive = *yc.CaseSensitive
	}
	if yc.IncludeSlashPrefix != nil {
		c.IncludeSlashPrefix = *yc.IncludeSlashPrefix
	}
	if yc.SuitePackage != nil {
		c.SuitePackage = *yc.SuitePackage
	}
	if yc.SuiteClass != nil {
		c.SuiteClass = *yc.SuiteClass
	}
	if yc.LogLevel != nil {
		c.LogLevel = *yc.LogLevel
	}

	return nil
}

// LoadEnv applies FLIST_* variables from a .env file and the process
// environment. Process variables win over the file.
func (c *Config) LoadEnv(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read env file: %w", err)
		}
		return &domain.ConfigurationError{Field: "env file " + path, Err: err}
	}

	return c.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv applies FLIST_* overrides found through lookup
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	list := func(name string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = splitList(v)
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return &domain.ConfigurationError{Field: EnvPrefix + name, Err: err}
		}
		*dst = b
		return nil
	}

	str("BASE_DIR", &c.BaseDir)
	str("OUTPUT_FILE", &c.OutputFile)
	list("INCLUDES", &c.Includes)
	list("EXCLUDES", &c.Excludes)
	str("TYPE", &c.Type)
	str("SUITE_PACKAGE", &c.SuitePackage)
	str("SUITE_CLASS", &c.SuiteClass)
	str("LOG_LEVEL", &c.LogLevel)

	if err := boolean("CASE_SENSITIVE", &c.CaseSensitive); err != nil {
		return err
	}
	return boolean("INCLUDE_SLASH_PREFIX", &c.IncludeSlashPrefix)
}

// splitList splits a comma separated value, dropping blank entries
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
