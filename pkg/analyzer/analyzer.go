package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ccollicutt/mostactive/pkg/parser"
)

// Analyzer answers most-active-cookie queries against log files.
type Analyzer struct {
	logger      *slog.Logger
	maxLineSize int
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithMaxLineSize sets the longest line accepted from a log file.
func WithMaxLineSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxLineSize = n
		}
	}
}

// New creates an Analyzer that logs to logger.
func New(logger *slog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:      logger,
		maxLineSize: parser.DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// FindMostActive returns the cookies logged most often on date in filename.
//
// The filename and date are validated and the file checked for existence
// before any reading starts. A file with no rows on date yields an empty
// result, not an error.
func (a *Analyzer) FindMostActive(ctx context.Context, filename, date string) (*Result, error) {
	start := time.Now()

	filename, err := parser.ValidateFilename(filename)
	if err != nil {
		return nil, err
	}

	date, err = parser.ParseDate(date)
	if err != nil {
		return nil, err
	}

	source, err := a.open(filename)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	freq, stats, err := NewAggregator(a.logger).Aggregate(ctx, source, date)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", filename, err)
	}

	return &Result{
		Cookies:    MostActive(freq),
		TargetDate: date,
		Source:     filename,
		Stats:      stats,
		Duration:   time.Since(start),
	}, nil
}

// open checks that filename names a readable regular file and opens it.
func (a *Analyzer) open(filename string) (*parser.FileSource, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", parser.ErrFileNotFound, filename)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", parser.ErrFileNotFound, filename)
	}

	source, err := parser.OpenFile(filename, a.maxLineSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrFileNotFound, err)
	}

	a.logger.Debug("opened log file", "file", filename, "size", info.Size())
	return source, nil
}
