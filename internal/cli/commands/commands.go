package commands

import (
	"github.com/spf13/cobra"

	"mktest/internal/cli"
	"mktest/internal/config"
	"mktest/internal/discovery"
	"mktest/internal/scaffold"
	"mktest/internal/storage"
	"mktest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Scaffold *ScaffoldCommand
	List     *ListCommand
	All      *AllCommand
	History  *HistoryCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	resolver := scaffold.NewResolver(cfg.TestDirName)
	generator := scaffold.NewGenerator(cfg.SourceExt)
	injector := scaffold.NewInjector(cfg.SourceExt, cfg.TestDirName)
	scanner := discovery.NewScanner(cfg.SourceExt)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	browser := ui.NewBrowser()

	return &Commands{
		Scaffold: NewScaffoldCommand(cfg, resolver, generator, injector, jsonStorage, formatter),
		List:     NewListCommand(cfg, resolver, generator, scanner, filter, formatter),
		All:      NewAllCommand(cfg, resolver, generator, injector, scanner, filter, jsonStorage, formatter),
		History:  NewHistoryCommand(cfg, jsonStorage, formatter),
		Browse:   NewBrowseCommand(cfg, resolver, generator, injector, scanner, filter, jsonStorage, browser),
	}
}

// Register wires all commands into cobra. Flags are copied into the
// config after parsing, so every component built from the config at
// creation time is rebuilt when an override changes the stack.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		cfg.ApplyEnv()
		if flags.SourceExt != "" {
			cfg.SourceExt = config.NormalizeExt(flags.SourceExt)
		}
		// Components capture extension and directory names at creation
		// time, so rebuild them now that overrides are known.
		*c = *NewCommands(cfg)
		return nil
	}

	// Root command doubles as the scaffold command: `mktest <ClassName>`.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Scaffold.Execute(cmd, args) }
	rootCmd.PersistentPreRunE = applyFlags
	rootCmd.PersistentFlags().StringVarP(&flags.Dir, "dir", "d", "", "Directory to run in (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVar(&flags.SourceExt, "ext", "", "Class source extension (defaults to .cpp)")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List classes and their test status",
		Long:  "Scan the source directory and show which classes already have a scaffolded test file",
		RunE:  func(cmd *cobra.Command, args []string) error { return c.List.Execute(cmd, args) },
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter classes by name pattern (supports wildcards, e.g., 'Audio*' or '*Processor')")
	rootCmd.AddCommand(listCmd)

	// All command
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Scaffold tests for every class without one",
		Long:  "Generate a skeleton test file and inject the include block for every class source that has no test yet",
		RunE:  func(cmd *cobra.Command, args []string) error { return c.All.Execute(cmd, args) },
	}
	allCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter classes by name pattern (supports wildcards, e.g., 'Audio*' or '*Processor')")
	rootCmd.AddCommand(allCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show the scaffold history",
		Long:  "Print the log of previously scaffolded test files",
		RunE:  func(cmd *cobra.Command, args []string) error { return c.History.Execute(cmd, args) },
	}
	rootCmd.AddCommand(historyCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick classes to scaffold interactively",
		Long:  "Browse classes without tests in an interactive viewer and scaffold them one by one",
		RunE:  func(cmd *cobra.Command, args []string) error { return c.Browse.Execute(cmd, args) },
	}
	browseCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter classes by name pattern (supports wildcards, e.g., 'Audio*' or '*Processor')")
	rootCmd.AddCommand(browseCmd)
}
