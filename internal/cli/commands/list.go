package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"exrun/internal/config"
	"exrun/internal/storage"
	"exrun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	source    *SuiteSource
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	source *SuiteSource,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		source:    source,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := lc.source.Load()
	if err != nil {
		return err
	}

	if len(suites) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	// Mark suites that failed last time; a missing results file is fine
	last, _ := lc.storage.Load()
	lc.formatter.PrintTestList(suites, lc.config.Flags.TestCases, failedSuiteNames(last))
	return nil
}
