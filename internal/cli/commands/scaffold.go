package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"mktest/internal/config"
	"mktest/internal/domain"
	"mktest/internal/scaffold"
	"mktest/internal/storage"
	"mktest/internal/ui"
)

// ScaffoldCommand handles the root scaffold flow: generate the test
// skeleton for one class and inject the include block into its source.
type ScaffoldCommand struct {
	config    *config.Config
	resolver  *scaffold.Resolver
	generator *scaffold.Generator
	injector  *scaffold.Injector
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewScaffoldCommand creates a new ScaffoldCommand
func NewScaffoldCommand(
	cfg *config.Config,
	resolver *scaffold.Resolver,
	generator *scaffold.Generator,
	injector *scaffold.Injector,
	st storage.Storage,
	formatter *ui.Formatter,
) *ScaffoldCommand {
	return &ScaffoldCommand{
		config:    cfg,
		resolver:  resolver,
		generator: generator,
		injector:  injector,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. Invoked without a class name it prints the
// usage text and exits cleanly.
func (sc *ScaffoldCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return sc.Scaffold(args[0])
}

// Scaffold runs the full flow for one class name. The include step only
// runs when the test file was freshly created, so an existing test file
// is never re-appended over. A missing class source is reported but is
// not a failure.
func (sc *ScaffoldCommand) Scaffold(class string) error {
	layout := sc.resolver.Resolve(sc.config.GetWorkDir())

	if !layout.InsideTest {
		if _, err := os.Stat(layout.TestDir); err != nil {
			sc.formatter.CreatingDir(layout.TestDir)
		}
	}

	result, testPath, err := sc.generator.Generate(class, layout.TestDir)
	if err != nil {
		return err
	}
	if result == scaffold.AlreadyExists {
		sc.formatter.TestFileExists()
		return nil
	}
	sc.formatter.TestFileCreated(testPath)

	injResult, sourcePath, err := sc.injector.Inject(class, layout.SourceDir)
	if err != nil {
		return err
	}
	injected := injResult == scaffold.Injected
	if injected {
		sc.formatter.IncludeAdded(sourcePath)
	} else {
		sc.formatter.SourceNotFound(class)
	}

	record := domain.ScaffoldRecord{
		Class:      class,
		TestFile:   testPath,
		SourceFile: sourcePath,
		Injected:   injected,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := sc.storage.Append(record); err != nil {
		sc.formatter.HistoryWarning(err)
	}

	return nil
}
