package ui

import (
	"fmt"

	"github.com/fatih/color"

	"mktest/internal/domain"
)

// Formatter prints status lines and listings for the scaffold commands.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// CreatingDir reports that the test directory is about to be created.
func (f *Formatter) CreatingDir(path string) {
	color.White("Creating dir %s", path)
}

// TestFileCreated reports a freshly written test skeleton.
func (f *Formatter) TestFileCreated(path string) {
	color.Green("Creating file %s", path)
}

// TestFileExists reports that the skeleton was left untouched.
func (f *Formatter) TestFileExists() {
	color.Yellow("test file already exists -- not creating it.")
}

// IncludeAdded reports a successful include injection.
func (f *Formatter) IncludeAdded(sourcePath string) {
	color.Green("Adding include of the unit tests to %s", sourcePath)
}

// SourceNotFound reports that neither filename casing of the class
// source exists. This is informational only, the exit code stays zero.
func (f *Formatter) SourceNotFound(class string) {
	color.Red("ERROR: source for %s not found", class)
}

// HistoryWarning reports a failed scaffold-log write without failing
// the scaffold itself.
func (f *Formatter) HistoryWarning(err error) {
	color.Yellow("warning: could not update scaffold log: %v", err)
}

// PrintClassList prints the discovered classes and whether each already
// has a scaffolded test.
func (f *Formatter) PrintClassList(classes []domain.Class) {
	withTest := 0
	for _, class := range classes {
		if class.HasTest {
			withTest++
			fmt.Printf("  %s %s\n", color.GreenString("✓"), class.Name)
		} else {
			fmt.Printf("  %s %s\n", color.RedString("✗"), class.Name)
		}
	}

	fmt.Println()
	color.White("%d class(es), %d with tests, %d without",
		len(classes), withTest, len(classes)-withTest)
}

// PrintHistory prints the scaffold log.
func (f *Formatter) PrintHistory(history *domain.History) {
	meta := history.Meta

	color.Cyan("Scaffold history")
	color.White("  scaffolds: %d  injected: %d  missing sources: %d  updated: %s\n",
		meta.TotalScaffolds, meta.Injected, meta.MissingSources, meta.UpdatedAt)

	for i, r := range history.Records {
		status := color.GreenString("injected")
		if !r.Injected {
			status = color.RedString("source missing")
		}
		fmt.Printf("  %d. %s  %s → %s  [%s]\n", i+1, r.Timestamp, r.Class, r.TestFile, status)
	}
}

// PrintAllSummary prints the result of a bulk scaffold run.
func (f *Formatter) PrintAllSummary(created, skipped, missing int) {
	fmt.Println()
	color.Green("✓ Created %d test file(s)", created)
	if skipped > 0 {
		color.Yellow("  %d already existed", skipped)
	}
	if missing > 0 {
		color.Red("  %d class source(s) not found", missing)
	}
}
