package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mktest/internal/config"
	"mktest/internal/discovery"
	"mktest/internal/domain"
	"mktest/internal/scaffold"
	"mktest/internal/storage"
	"mktest/internal/ui"
)

// AllCommand scaffolds a test for every class source that lacks one.
type AllCommand struct {
	config    *config.Config
	resolver  *scaffold.Resolver
	generator *scaffold.Generator
	injector  *scaffold.Injector
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewAllCommand creates a new AllCommand
func NewAllCommand(
	cfg *config.Config,
	resolver *scaffold.Resolver,
	generator *scaffold.Generator,
	injector *scaffold.Injector,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *AllCommand {
	return &AllCommand{
		config:    cfg,
		resolver:  resolver,
		generator: generator,
		injector:  injector,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (ac *AllCommand) Execute(cmd *cobra.Command, args []string) error {
	layout := ac.resolver.Resolve(ac.config.GetWorkDir())

	classes, err := ac.scanner.Scan(layout.SourceDir)
	if err != nil {
		return err
	}
	classes = ac.filter.FilterByName(classes, ac.config.Flags.NameFilter)

	var pending []domain.Class
	for _, class := range classes {
		testPath := filepath.Join(layout.TestDir, ac.generator.FileName(class.Name))
		if _, err := os.Stat(testPath); err != nil {
			pending = append(pending, class)
		}
	}

	if len(pending) == 0 {
		color.Green("✓ Every class already has a test file")
		return nil
	}

	bar := ui.NewProgressBar(len(pending))
	created := 0
	missing := 0

	for _, class := range pending {
		result, testPath, err := ac.generator.Generate(class.Name, layout.TestDir)
		if err != nil {
			return err
		}
		if result == scaffold.AlreadyExists {
			bar.Update(created, missing)
			continue
		}
		created++

		injResult, sourcePath, err := ac.injector.Inject(class.Name, layout.SourceDir)
		if err != nil {
			return err
		}
		injected := injResult == scaffold.Injected
		if !injected {
			missing++
		}

		record := domain.ScaffoldRecord{
			Class:      class.Name,
			TestFile:   testPath,
			SourceFile: sourcePath,
			Injected:   injected,
			Timestamp:  time.Now().Format(time.RFC3339),
		}
		if err := ac.storage.Append(record); err != nil {
			ac.formatter.HistoryWarning(err)
		}

		bar.Update(created, missing)
	}
	bar.Finish()

	ac.formatter.PrintAllSummary(created, len(pending)-created, missing)
	return nil
}
