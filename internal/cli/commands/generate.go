package commands

import (
	"github.com/spf13/cobra"

	"flist/internal/config"
	"flist/internal/discovery"
	"flist/internal/ui"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, scanner *discovery.Scanner) *GenerateCommand {
	return &GenerateCommand{
		config:  cfg,
		scanner: scanner,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	format, err := gc.config.Format()
	if err != nil {
		return err
	}

	gen := newGenerator(gc.config, gc.scanner, cmd.ErrOrStderr())
	if !gc.config.Quiet {
		gen.WithProgress(ui.NewScanProgress(cmd.ErrOrStderr()))
	}

	result, err := gen.Generate(gc.config.ScanRequest(), format, gc.config.Suite(), gc.config.GetOutputPath())
	if err != nil {
		return err
	}

	if !gc.config.Quiet {
		ui.NewFormatter(cmd.OutOrStdout()).PrintSummary(result)
	}
	return nil
}
