package analyzer

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/mostactive/pkg/parser"
)

// LineProblem is a data line that would be skipped during a query.
type LineProblem struct {
	Line int
	Err  error
}

// LintReport describes the structural health of a cookie log.
type LintReport struct {
	Source   string
	Lines    int
	Problems []LineProblem
}

// OK reports whether every data line is well formed.
func (r *LintReport) OK() bool {
	return len(r.Problems) == 0
}

// Lint checks the header and every data line of filename without running a
// query. A bad header is returned as an error; malformed lines are collected
// in the report.
func (a *Analyzer) Lint(ctx context.Context, filename string) (*LintReport, error) {
	filename, err := parser.ValidateFilename(filename)
	if err != nil {
		return nil, err
	}

	source, err := a.open(filename)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	header, err := source.Next(ctx)
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty, expected %q", parser.ErrInvalidHeader, filename, parser.Header)
	}
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateHeader(header.Text); err != nil {
		return nil, fmt.Errorf("linting %s: %w", filename, err)
	}

	report := &LintReport{Source: filename}
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		report.Lines++
		if _, err := parser.ParseLine(line.Text, line.Num); err != nil {
			report.Problems = append(report.Problems, LineProblem{Line: line.Num, Err: err})
		}
	}

	return report, nil
}
