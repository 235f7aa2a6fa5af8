package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"mktest/internal/config"
	"mktest/internal/discovery"
	"mktest/internal/domain"
	"mktest/internal/scaffold"
	"mktest/internal/storage"
	"mktest/internal/ui"
)

// BrowseCommand opens an interactive picker over classes without tests.
type BrowseCommand struct {
	config    *config.Config
	resolver  *scaffold.Resolver
	generator *scaffold.Generator
	injector  *scaffold.Injector
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	browser   *ui.Browser
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(
	cfg *config.Config,
	resolver *scaffold.Resolver,
	generator *scaffold.Generator,
	injector *scaffold.Injector,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	browser *ui.Browser,
) *BrowseCommand {
	return &BrowseCommand{
		config:    cfg,
		resolver:  resolver,
		generator: generator,
		injector:  injector,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		browser:   browser,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	layout := bc.resolver.Resolve(bc.config.GetWorkDir())

	classes, err := bc.scanner.Scan(layout.SourceDir)
	if err != nil {
		return err
	}
	classes = bc.filter.FilterByName(classes, bc.config.Flags.NameFilter)

	var pending []domain.Class
	for _, class := range classes {
		class.TestPath = filepath.Join(layout.TestDir, bc.generator.FileName(class.Name))
		if _, err := os.Stat(class.TestPath); err != nil {
			pending = append(pending, class)
		}
	}

	// The callback returns status text for the details pane instead of
	// printing, stdout belongs to tview while the picker is open.
	return bc.browser.Browse(pending, func(class domain.Class) (string, error) {
		result, testPath, err := bc.generator.Generate(class.Name, layout.TestDir)
		if err != nil {
			return "", err
		}
		if result == scaffold.AlreadyExists {
			return "test file already exists -- not creating it.", nil
		}

		injResult, sourcePath, err := bc.injector.Inject(class.Name, layout.SourceDir)
		if err != nil {
			return "", err
		}
		injected := injResult == scaffold.Injected

		record := domain.ScaffoldRecord{
			Class:      class.Name,
			TestFile:   testPath,
			SourceFile: sourcePath,
			Injected:   injected,
			Timestamp:  time.Now().Format(time.RFC3339),
		}
		if err := bc.storage.Append(record); err != nil {
			return "", err
		}

		if !injected {
			return fmt.Sprintf("created %s\n[red]source for %s not found[white]", testPath, class.Name), nil
		}
		return fmt.Sprintf("created %s\nadded include to %s", testPath, sourcePath), nil
	})
}
