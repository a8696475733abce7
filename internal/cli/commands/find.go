package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/mostactive/pkg/analyzer"
	"github.com/ccollicutt/mostactive/pkg/output"
	"github.com/ccollicutt/mostactive/pkg/parser"
)

const usageLine = "usage: mostactive -f <filename> -d <YYYY-MM-DD>"

// FindOptions holds command-line options for the most-active-cookie query.
type FindOptions struct {
	File onceString
	Date onceString
}

// NewFindCommand creates the query command. It is used as the root command,
// so the query runs as `mostactive -f <file> -d <date>`.
func NewFindCommand(deps *Deps) *cobra.Command {
	opts := &FindOptions{}

	cmd := &cobra.Command{
		Use:   "mostactive -f <filename> -d <date>",
		Short: "Find the most active cookie for a day",
		Long: `Print the cookie identifier(s) that appear most often on the given day
in a cookie log. Ties are all printed, sorted, one per line.

The log is a CSV file whose first line is exactly "cookie,timestamp",
followed by <cookie>,<timestamp> rows. Malformed rows are skipped with a
warning; a missing or wrong header aborts the run.

Exit codes:
  0 - Query succeeded (possibly with no matching cookies)
  1 - Bad arguments, missing file, bad header or runtime error`,
		Example: "  mostactive -f cookie_log.csv -d 2018-12-09",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q (%s)", parser.ErrInvalidArgument, args[0], usageLine)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, deps, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().VarP(&opts.File, "file", "f", "Cookie log file (required)")
	cmd.Flags().VarP(&opts.Date, "date", "d", "Day to query, YYYY-MM-DD (required)")
	cmd.SetFlagErrorFunc(flagError)

	return cmd
}

func runFind(cmd *cobra.Command, deps *Deps, opts *FindOptions) error {
	if err := checkTokens(deps.Args); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := analyzer.New(deps.Logger, analyzer.WithMaxLineSize(deps.Config.MaxLineSize))

	result, err := a.FindMostActive(ctx, opts.File.value, opts.Date.value)
	if err != nil {
		return err
	}

	if len(result.Cookies) == 0 {
		deps.Logger.Warn("no cookies found for date", "date", result.TargetDate)
		return nil
	}

	deps.Logger.Info("found most active cookies",
		"count", len(result.Cookies),
		"date", result.TargetDate,
		"duration", result.Duration,
	)

	return output.WriteCookies(cmd.OutOrStdout(), result.Cookies)
}

// checkTokens enforces the exact query shape: -f and -d, each once and each
// followed by its value, in either order.
func checkTokens(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: expected 4 arguments, got %d (%s)", parser.ErrInvalidArgument, len(args), usageLine)
	}

	seen := make(map[string]bool, 2)
	for i := 0; i < len(args); i += 2 {
		flag := args[i]
		if flag != "-f" && flag != "-d" {
			return fmt.Errorf("%w: unknown parameter %q (%s)", parser.ErrInvalidArgument, flag, usageLine)
		}
		if seen[flag] {
			return fmt.Errorf("%w: %s given more than once (%s)", parser.ErrInvalidArgument, flag, usageLine)
		}
		seen[flag] = true
	}

	return nil
}
