// Package cli provides the command-line interface for mostactive.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mostactive/internal/cli/commands"
	"github.com/ccollicutt/mostactive/pkg/config"
	"github.com/ccollicutt/mostactive/pkg/logging"
)

// Execute runs the command line of the current process and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args. Results go to stdout; diagnostics
// and errors go to stderr through the logger.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnvironment(ctx)
	if err != nil {
		// No logger yet: its settings are what failed to load.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return commands.ExitFailure
	}

	logger := logging.New(stderr, cfg)

	rootCmd := NewRootCommand(&commands.Deps{
		Config: cfg,
		Logger: logger,
		Args:   args,
	})
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		return commands.ExitFailure
	}
	return commands.ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(deps *commands.Deps) *cobra.Command {
	rootCmd := commands.NewFindCommand(deps)

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand(deps))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
