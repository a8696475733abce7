package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ccollicutt/mostactive/pkg/parser"
)

// Aggregator counts cookie occurrences on a target date.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an Aggregator that reports skipped lines and
// summaries to logger.
func NewAggregator(logger *slog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate reads source to the end and counts, per cookie, the rows whose
// timestamp falls on targetDate.
//
// The first line must be the CSV header; anything else aborts with
// parser.ErrInvalidHeader. Malformed data rows are logged and skipped.
// Read errors abort.
func (a *Aggregator) Aggregate(ctx context.Context, source parser.LineSource, targetDate string) (FrequencyMap, Stats, error) {
	var stats Stats

	header, err := source.Next(ctx)
	if err == io.EOF {
		return nil, stats, fmt.Errorf("%w: %s is empty, expected %q", parser.ErrInvalidHeader, source.Name(), parser.Header)
	}
	if err != nil {
		return nil, stats, err
	}
	if err := parser.ValidateHeader(header.Text); err != nil {
		return nil, stats, err
	}

	freq := make(FrequencyMap)

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, err
		}

		stats.LinesProcessed++

		entry, err := parser.ParseLine(line.Text, line.Num)
		if err != nil {
			stats.LinesSkipped++
			a.logger.Warn("skipping line", "line", line.Num, "reason", err)
			continue
		}

		if parser.IsTargetDate(a.logger, entry.Timestamp, targetDate) {
			stats.LinesMatched++
			freq[entry.CookieID]++
		}
	}

	a.logger.Info("processed lines",
		"lines", stats.LinesProcessed,
		"skipped", stats.LinesSkipped,
		"matched", stats.LinesMatched,
		"date", targetDate,
	)

	return freq, stats, nil
}
