package commands

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mktest/internal/config"
	"mktest/internal/discovery"
	"mktest/internal/scaffold"
	"mktest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	resolver  *scaffold.Resolver
	generator *scaffold.Generator
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	resolver *scaffold.Resolver,
	generator *scaffold.Generator,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		resolver:  resolver,
		generator: generator,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	layout := lc.resolver.Resolve(lc.config.GetWorkDir())

	classes, err := lc.scanner.Scan(layout.SourceDir)
	if err != nil {
		return err
	}
	classes = lc.filter.FilterByName(classes, lc.config.Flags.NameFilter)

	if len(classes) == 0 {
		color.Yellow("No class sources found")
		return nil
	}

	for i := range classes {
		classes[i].TestPath = filepath.Join(layout.TestDir, lc.generator.FileName(classes[i].Name))
		_, err := os.Stat(classes[i].TestPath)
		classes[i].HasTest = err == nil
	}

	lc.formatter.PrintClassList(classes)
	return nil
}
