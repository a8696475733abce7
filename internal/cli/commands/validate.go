package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mostactive/pkg/analyzer"
)

// ErrMalformedLines is returned by validate when any data line is malformed.
var ErrMalformedLines = errors.New("malformed lines found")

// NewValidateCommand creates the validate command.
func NewValidateCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <csv-file>",
		Short: "Validate a cookie log file",
		Long: `Validate a cookie log without running a query.

Checks:
  - The file exists and is readable
  - The header is exactly "cookie,timestamp"
  - Every data line has two non-empty columns

Lines that fail would be skipped by a query; validate lists them and exits 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, deps, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, deps *Deps, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", path)

	a := analyzer.New(deps.Logger, analyzer.WithMaxLineSize(deps.Config.MaxLineSize))
	report, err := a.Lint(ctx, path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nHeader valid\n")
	fmt.Fprintf(out, "  Data lines:      %d\n", report.Lines)
	fmt.Fprintf(out, "  Malformed lines: %d\n", len(report.Problems))

	if report.OK() {
		return nil
	}

	fmt.Fprintf(out, "\nMalformed:\n")
	for _, p := range report.Problems {
		fmt.Fprintf(out, "  - %v\n", p.Err)
	}

	return fmt.Errorf("%s: %w", report.Source, ErrMalformedLines)
}
