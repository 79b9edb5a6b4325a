package commands

import (
	"github.com/spf13/cobra"

	"flist/internal/config"
	"flist/internal/discovery"
	"flist/internal/generator"
	"flist/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter

	nameFilter string
	tree       bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	matched, err := scan(lc.config, lc.scanner, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	matched = lc.filter.FilterByName(matched, lc.nameFilter)

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	if lc.tree {
		formatter.PrintFileList(matched, true)
		return nil
	}
	formatter.PrintFileList(generator.Prepare(matched, lc.config.IncludeSlashPrefix), false)
	return nil
}
