package cli

import "flist/internal/config"

// Flag names shared by registration and change detection
const (
	FlagProject      = "project"
	FlagConfig       = "config"
	FlagEnvFile      = "env-file"
	FlagBaseDir      = "base-dir"
	FlagOutput       = "output"
	FlagInclude      = "include"
	FlagExclude      = "exclude"
	FlagType         = "type"
	FlagCaseSens     = "case-sensitive"
	FlagSlashPrefix  = "slash-prefix"
	FlagSuitePackage = "suite-package"
	FlagSuiteClass   = "suite-class"
	FlagLogLevel     = "log-level"
	FlagQuiet        = "quiet"
)

// Flags holds command-line flags
type Flags struct {
	// Where configuration comes from
	ProjectPath string
	ConfigFile  string
	EnvFile     string

	// Overrides
	BaseDir            string
	OutputFile         string
	Includes           []string
	Excludes           []string
	Type               string
	CaseSensitive      bool
	IncludeSlashPrefix bool
	SuitePackage       string
	SuiteClass         string
	LogLevel           string
	Quiet              bool

	// list and browse
	NameFilter string
	Tree       bool
}

// ToConfigFlags converts CLI flags to config flags. Only flags reported
// by changed are carried over so that unset flags keep file and
// environment values.
func (f *Flags) ToConfigFlags(changed func(name string) bool) config.Flags {
	var cf config.Flags

	if changed(FlagBaseDir) {
		cf.BaseDir = &f.BaseDir
	}
	if changed(FlagOutput) {
		cf.OutputFile = &f.OutputFile
	}
	if changed(FlagInclude) {
		cf.Includes = &f.Includes
	}
	if changed(FlagExclude) {
		cf.Excludes = &f.Excludes
	}
	if changed(FlagType) {
		cf.Type = &f.Type
	}
	if changed(FlagCaseSens) {
		cf.CaseSensitive = &f.CaseSensitive
	}
	if changed(FlagSlashPrefix) {
		cf.IncludeSlashPrefix = &f.IncludeSlashPrefix
	}
	if changed(FlagSuitePackage) {
		cf.SuitePackage = &f.SuitePackage
	}
	if changed(FlagSuiteClass) {
		cf.SuiteClass = &f.SuiteClass
	}
	if changed(FlagLogLevel) {
		cf.LogLevel = &f.LogLevel
	}
	if changed(FlagQuiet) {
		cf.Quiet = &f.Quiet
	}

	return cf
}
