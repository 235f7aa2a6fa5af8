package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mktest/internal/config"
	"mktest/internal/storage"
	"mktest/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	history, err := hc.storage.Load()
	if err != nil {
		if os.IsNotExist(err) {
			color.Yellow("No scaffolds recorded yet")
			return nil
		}
		return err
	}

	hc.formatter.PrintHistory(history)
	return nil
}
