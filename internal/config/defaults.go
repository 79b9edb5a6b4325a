package config

import "flist/internal/render"

const (
	// DefaultProjectPath is the directory relative paths are resolved against
	DefaultProjectPath = "."
	// DefaultBaseDir is the default scan root
	DefaultBaseDir = "./target/"
	// DefaultOutputFile is the default output destination
	DefaultOutputFile = "./target/file-list.json"
	// DefaultType is the default output format name
	DefaultType = "json"
	// DefaultSuitePackage is the package of the generated JUnit suite
	DefaultSuitePackage = render.DefaultSuitePackage
	// DefaultSuiteClass is the class name of the generated JUnit suite
	DefaultSuiteClass = render.DefaultSuiteClass
	// DefaultLogLevel is the default console log level
	DefaultLogLevel = "info"
	// DefaultConfigFile is read from the project path when present
	DefaultConfigFile = "flist.yaml"
	// DefaultEnvFile is read from the project path when present
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "FLIST_"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}
