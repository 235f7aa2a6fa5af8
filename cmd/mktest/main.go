package main

import (
	"fmt"
	"os"

	"mktest/internal/cli"
	"mktest/internal/cli/commands"
	"mktest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "mktest <ClassName>",
		Short: "Scaffold JUCE unit-test files",
		Long: `mktest creates a skeleton TestSuite unit-test file for the given class.

The test file is written to a directory named "test" underneath the
current directory (or into the current directory, when it is already
named "test") unless it already exists. A block of code is then appended
to the class's source file so the test file is compiled into its
translation unit when RUN_UNIT_TESTS is defined.

ASSUMES that the class "FooClass" is contained in a file named
FooClass.cpp or fooClass.cpp.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
