package commands

import (
	"github.com/spf13/cobra"

	"flist/internal/config"
	"flist/internal/discovery"
	"flist/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter

	nameFilter string
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *BrowseCommand {
	return &BrowseCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	matched, err := scan(bc.config, bc.scanner, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	matched = bc.filter.FilterByName(matched, bc.nameFilter)

	return ui.NewBrowser(bc.config.GetBaseDir(), matched).Run()
}
