package commands

import (
	"io"

	"github.com/spf13/cobra"

	"flist/internal/cli"
	"flist/internal/config"
	"flist/internal/discovery"
	"flist/internal/generator"
	"flist/internal/storage"
	"flist/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()

	return &Commands{
		Generate: NewGenerateCommand(cfg, scanner),
		List:     NewListCommand(cfg, scanner, filter),
		Browse:   NewBrowseCommand(cfg, scanner, filter),
	}
}

// NewRootCommand builds the flist command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flist",
		Short: "Generate file lists from a directory tree",
		Long: `Scan a directory for files matching include and exclude glob patterns and
write the list as JSON, plain text, or a JUnit test suite class.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg := config.New()
	var flags cli.Flags

	cmds := NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ProjectPath, cli.FlagProject, "C", config.DefaultProjectPath, "Project directory relative paths are resolved against")
	pf.StringVar(&flags.ConfigFile, cli.FlagConfig, "", "YAML config file (default <project>/"+config.DefaultConfigFile+" if present)")
	pf.StringVar(&flags.EnvFile, cli.FlagEnvFile, "", "Env file with FLIST_* overrides (default <project>/"+config.DefaultEnvFile+" if present)")
	pf.StringVarP(&flags.BaseDir, cli.FlagBaseDir, "b", config.DefaultBaseDir, "Base directory to scan")
	pf.StringVarP(&flags.OutputFile, cli.FlagOutput, "o", config.DefaultOutputFile, "File to write the list to")
	pf.StringArrayVarP(&flags.Includes, cli.FlagInclude, "i", nil, "Include pattern, repeatable (e.g. '**/*Test.java'); none means all files")
	pf.StringArrayVarP(&flags.Excludes, cli.FlagExclude, "e", nil, "Exclude pattern, repeatable")
	pf.StringVarP(&flags.Type, cli.FlagType, "t", config.DefaultType, "Output type used by generate: json, text or junit")
	pf.BoolVar(&flags.CaseSensitive, cli.FlagCaseSens, false, "Match patterns case sensitively")
	pf.BoolVar(&flags.IncludeSlashPrefix, cli.FlagSlashPrefix, false, "Prefix every path with '/'")
	pf.StringVar(&flags.SuitePackage, cli.FlagSuitePackage, config.DefaultSuitePackage, "Package of the generated JUnit suite")
	pf.StringVar(&flags.SuiteClass, cli.FlagSuiteClass, config.DefaultSuiteClass, "Class name of the generated JUnit suite")
	pf.StringVar(&flags.LogLevel, cli.FlagLogLevel, config.DefaultLogLevel, "Log level: trace, debug, info, warn, error")
	pf.BoolVarP(&flags.Quiet, cli.FlagQuiet, "q", false, "Hide progress and summary output")

	// Load config files and environment, then apply explicit flags
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ProjectPath, flags.ConfigFile, flags.EnvFile)
		if err != nil {
			return err
		}
		*cfg = *loaded
		cfg.MergeWithFlags(flags.ToConfigFlags(cmd.Flags().Changed))
		return cfg.Validate()
	}

	// Generate is also the root's default action
	rootCmd.RunE = c.Generate.Execute

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the file list",
		Long:  "Scan the base directory and write the matched files to the output file",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	rootCmd.AddCommand(generateCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List matched files",
		Long:  "Scan the base directory and print the matched files without writing anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&c.List.nameFilter, "filter", "f", "", "Filter by file name (supports wildcards, e.g. '*UserTest.java' or '*Payment*')")
	listCmd.Flags().BoolVar(&c.List.tree, "tree", false, "Print the files as a directory tree")
	rootCmd.AddCommand(listCmd)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse matched files interactively",
		Long:  "Scan the base directory and show the matched files in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().StringVarP(&c.Browse.nameFilter, "filter", "f", "", "Filter by file name (supports wildcards)")
	rootCmd.AddCommand(browseCmd)
}

// scan runs the scanner with a progress spinner unless quiet
func scan(cfg *config.Config, scanner *discovery.Scanner, progressOut io.Writer) ([]string, error) {
	if !cfg.Quiet {
		progress := ui.NewScanProgress(progressOut)
		scanner.OnVisit(progress.Visit)
		defer func() {
			scanner.OnVisit(nil)
			progress.Finish()
		}()
	}
	return scanner.Scan(cfg.ScanRequest())
}

// newGenerator wires a Generator logging to w
func newGenerator(cfg *config.Config, scanner *discovery.Scanner, w io.Writer) *generator.Generator {
	logger := ui.NewConsoleLogger(w, cfg.LogLevel)
	return generator.New(scanner, storage.NewFileStorage(logger), logger)
}
